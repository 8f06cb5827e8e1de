package validation

import "testing"

func TestValidatePetName(t *testing.T) {
	valid := []string{"Rex", "Mr. Whiskers", "O'Malley", "Bella-Rose", "Côco"}
	for _, name := range valid {
		if err := ValidatePetName(name); err != nil {
			t.Errorf("expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{"", "   ", "<script>", "a_b", string(make([]byte, 50))}
	for _, name := range invalid {
		if err := ValidatePetName(name); err == nil {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestValidatePetSpecies(t *testing.T) {
	if err := ValidatePetSpecies("Dog"); err != nil {
		t.Errorf("species should be case-insensitive: %v", err)
	}
	if err := ValidatePetSpecies("dragon"); err == nil {
		t.Error("expected unsupported species to be rejected")
	}
}

func TestValidatePetBio(t *testing.T) {
	if err := ValidatePetBio(string(make([]byte, 501))); err == nil {
		t.Error("expected over-long bio to be rejected")
	}
	if err := ValidatePetBio("loves long walks"); err != nil {
		t.Errorf("expected short bio to pass: %v", err)
	}
}
