// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pawnder/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var speciesPool = []string{"dog", "cat", "rabbit", "bird", "hamster", "reptile", "other"}

var breedsBySpecies = map[string][]string{
	"dog":     {"Corgi", "Labrador", "Beagle", "Poodle", "Dachshund", "Husky", "Mixed"},
	"cat":     {"Tabby", "Siamese", "Maine Coon", "Ragdoll", "Sphynx", "Mixed"},
	"rabbit":  {"Holland Lop", "Netherland Dwarf", "Lionhead", "Rex"},
	"bird":    {"Budgerigar", "Cockatiel", "Lovebird", "Canary"},
	"hamster": {"Syrian", "Roborovski", "Campbell's Dwarf"},
	"reptile": {"Leopard Gecko", "Bearded Dragon", "Corn Snake"},
	"other":   {"Unknown"},
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample owner account.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePet constructs and persists a pet profile for the given owner.
func (f *Factory) CreatePet(owner *models.User, overrides ...func(*models.Pet)) (*models.Pet, error) {
	species := speciesPool[f.r.Intn(len(speciesPool))]
	breeds := breedsBySpecies[species]

	pet := &models.Pet{
		UserID:  owner.ID,
		Name:    gofakeit.PetName(),
		Species: species,
		Breed:   breeds[f.r.Intn(len(breeds))],
		Bio:     gofakeit.Sentence(8),
		Avatar:  fmt.Sprintf("https://placedog.net/500?id=%d", gofakeit.Number(1, 200)),
	}

	for _, override := range overrides {
		override(pet)
	}

	if err := f.db.Create(pet).Error; err != nil {
		return nil, err
	}
	return pet, nil
}

// CreateLike persists a pending like edge between two pets. Timestamps are
// spread over the past maxDays so feeds look lived-in.
func (f *Factory) CreateLike(from, to *models.Pet, maxDays int) (*models.Match, error) {
	match := &models.Match{
		FromPetID:  from.ID,
		ToPetID:    to.ID,
		FromUserID: from.UserID,
		ToUserID:   to.UserID,
		Status:     models.MatchStatusPending,
	}
	match.CreatedAt = f.pastTime(maxDays)

	if err := f.db.Create(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

// CreateMatch persists an accepted edge between two pets.
func (f *Factory) CreateMatch(from, to *models.Pet, maxDays int) (*models.Match, error) {
	match, err := f.CreateLike(from, to, maxDays)
	if err != nil {
		return nil, err
	}
	if err := f.db.Model(match).Update("status", models.MatchStatusAccepted).Error; err != nil {
		return nil, err
	}
	match.Status = models.MatchStatusAccepted
	return match, nil
}

// CreateBlock persists a directed block edge between two users.
func (f *Factory) CreateBlock(from, to *models.User) error {
	return f.db.Create(&models.Block{FromUserID: from.ID, ToUserID: to.ID}).Error
}

// CreateVIPSubscription grants the user an active VIP plan.
func (f *Factory) CreateVIPSubscription(user *models.User) (*models.Subscription, error) {
	sub := &models.Subscription{
		UserID:    user.ID,
		Plan:      models.SubscriptionPlanVIP,
		ExpiresAt: time.Now().AddDate(0, 1, 0),
	}
	if err := f.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateMessage persists a chat message inside a match conversation.
func (f *Factory) CreateMessage(match *models.Match, senderPetID uint, read bool) (*models.Message, error) {
	msg := &models.Message{
		MatchID:     match.ID,
		SenderPetID: senderPetID,
		Content:     gofakeit.Sentence(12),
		IsRead:      read,
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (f *Factory) pastTime(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 30
	}
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
