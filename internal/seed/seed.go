package seed

import (
	"fmt"
	"log"

	"pawnder/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumLikes    int
	MaxDays     int
	ShouldClean bool
}

// Seed populates the database with demo owners, pets, and social activity.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d likes...", opts.NumUsers, opts.NumLikes)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, pets, err := createOwnersWithPets(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d owners created with %d pets", len(users), len(pets))

	vips, err := grantVIPs(f, users)
	if err != nil {
		return fmt.Errorf("failed to grant subscriptions: %w", err)
	}
	log.Printf("%d VIP subscriptions granted", vips)

	likes, matches, err := createSocialMesh(f, pets, opts)
	if err != nil {
		return fmt.Errorf("failed to create social mesh: %w", err)
	}
	log.Printf("%d pending likes and %d matches created", likes, matches)

	blocks, err := createBlocks(f, users)
	if err != nil {
		return fmt.Errorf("failed to create blocks: %w", err)
	}
	log.Printf("%d blocks created", blocks)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(
			`TRUNCATE TABLE messages, matches, blocks, daily_usages, subscriptions, pets, users RESTART IDENTITY CASCADE;`,
		).Error
	}
	// FK-safe deletion order for non-postgres (sqlite in tests).
	for _, table := range []string{"messages", "matches", "blocks", "daily_usages", "subscriptions", "pets", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// createOwnersWithPets creates count users, each with one to three pets. The
// first pet of every owner becomes the active discovery profile.
func createOwnersWithPets(f *Factory, count int) ([]*models.User, []*models.Pet, error) {
	users := make([]*models.User, 0, count)
	pets := make([]*models.Pet, 0, count*2)

	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		numPets := 1 + f.r.Intn(3)
		for p := 0; p < numPets; p++ {
			active := p == 0
			pet, err := f.CreatePet(user, func(pet *models.Pet) {
				pet.IsActive = active
			})
			if err != nil {
				return nil, nil, err
			}
			pets = append(pets, pet)
		}

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d owners...", i)
		}
	}

	return users, pets, nil
}

// grantVIPs gives roughly one in ten users an active VIP plan.
func grantVIPs(f *Factory, users []*models.User) (int, error) {
	granted := 0
	for _, user := range users {
		if f.r.Intn(10) != 0 {
			continue
		}
		if _, err := f.CreateVIPSubscription(user); err != nil {
			return granted, err
		}
		granted++
	}
	return granted, nil
}

// createSocialMesh sprinkles likes between random pet pairs. Around a third
// of the edges are promoted to matches, some with unread chat activity.
func createSocialMesh(f *Factory, pets []*models.Pet, opts Options) (int, int, error) {
	if len(pets) < 2 {
		return 0, 0, nil
	}

	numLikes := opts.NumLikes
	if numLikes <= 0 {
		numLikes = len(pets) * 2
	}

	likes, matches := 0, 0
	for i := 0; i < numLikes; i++ {
		from := pets[f.r.Intn(len(pets))]
		to := pets[f.r.Intn(len(pets))]
		if from.UserID == to.UserID {
			continue
		}

		if f.r.Intn(3) == 0 {
			match, err := f.CreateMatch(from, to, opts.MaxDays)
			if err != nil {
				// Duplicate pair; the live-pair index rejects it.
				continue
			}
			matches++
			if f.r.Intn(2) == 0 {
				if _, err := f.CreateMessage(match, from.ID, false); err != nil {
					return likes, matches, err
				}
			}
			continue
		}

		if _, err := f.CreateLike(from, to, opts.MaxDays); err != nil {
			continue
		}
		likes++
	}

	return likes, matches, nil
}

// createBlocks adds a handful of block edges so suppression paths have data.
func createBlocks(f *Factory, users []*models.User) (int, error) {
	if len(users) < 4 {
		return 0, nil
	}

	target := len(users) / 10
	blocks := 0
	for i := 0; i < target; i++ {
		from := users[f.r.Intn(len(users))]
		to := users[f.r.Intn(len(users))]
		if from.ID == to.ID {
			continue
		}
		if err := f.CreateBlock(from, to); err != nil {
			// Duplicate pair hits the composite primary key.
			continue
		}
		blocks++
	}
	return blocks, nil
}
