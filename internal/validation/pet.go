// Package validation contains input validation rules for user-supplied data.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var petNameRegex = regexp.MustCompile(`^[\p{L}\p{N} .'-]{1,40}$`)

// Species the discovery pool understands. Anything else is rejected at
// creation so downstream filters never see free-form species strings.
var allowedSpecies = map[string]struct{}{
	"dog":     {},
	"cat":     {},
	"rabbit":  {},
	"bird":    {},
	"hamster": {},
	"reptile": {},
	"other":   {},
}

const maxPetBioLength = 500

// ValidatePetName validates pet display-name format.
func ValidatePetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if !petNameRegex.MatchString(name) {
		return fmt.Errorf("name must be 1-40 characters of letters, numbers, spaces, or .'-")
	}
	return nil
}

// ValidatePetSpecies validates the species against the supported set.
func ValidatePetSpecies(species string) error {
	if _, ok := allowedSpecies[strings.ToLower(strings.TrimSpace(species))]; !ok {
		return fmt.Errorf("unsupported species")
	}
	return nil
}

// ValidatePetBio validates bio length.
func ValidatePetBio(bio string) error {
	if len(bio) > maxPetBioLength {
		return fmt.Errorf("bio must be at most %d characters", maxPetBioLength)
	}
	return nil
}
