// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"amity/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder populates the database with plausible demo data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll wipes every seeded table. Relationship rows go first so the
// user deletes never trip foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"friendships", "enmities", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	log.Println("Database cleared")
	return nil
}

// BuildUser constructs a plausible unsaved user.
func (s *Seeder) BuildUser(n int) *models.User {
	gender := models.GenderMale
	if s.rng.Intn(2) == 1 {
		gender = models.GenderFemale
	}

	statuses := []models.UserStatus{
		models.UserStatusOnline,
		models.UserStatusInactive,
		models.UserStatusDoNotDisturb,
		models.UserStatusOffline,
	}

	// Ages spread between 18 and 60.
	age := 18 + s.rng.Intn(43)
	dob := time.Now().AddDate(-age, -s.rng.Intn(12), -s.rng.Intn(28))

	return &models.User{
		UID:         fmt.Sprintf("u%04d%03d", n, s.rng.Intn(1000)),
		Nickname:    gofakeit.Username(),
		Email:       fmt.Sprintf("%d.%s", n, gofakeit.Email()),
		AvatarURL:   fmt.Sprintf("https://picsum.photos/seed/%s/256/256", gofakeit.UUID()),
		Gender:      gender,
		Status:      statuses[s.rng.Intn(len(statuses))],
		DateOfBirth: dob,
	}
}

// SeedUsers creates n users and returns them.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u := s.BuildUser(i)
		if err := s.db.Create(u).Error; err != nil {
			return nil, fmt.Errorf("seeding user %d: %w", i, err)
		}
		users = append(users, *u)
	}
	log.Printf("Seeded %d users", n)
	return users, nil
}

// SeedSocialMesh creates n users plus a relationship mesh between them:
// confirmed friendships, pending applications, and a few enmities.
func (s *Seeder) SeedSocialMesh(n int) ([]models.User, error) {
	users, err := s.SeedUsers(n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return users, nil
	}

	type pair struct{ a, b int }
	used := make(map[pair]bool)
	pick := func() (int, int, bool) {
		for tries := 0; tries < 20; tries++ {
			a, b := s.rng.Intn(n), s.rng.Intn(n)
			if a == b {
				continue
			}
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			if used[pair{lo, hi}] {
				continue
			}
			used[pair{lo, hi}] = true
			return a, b, true
		}
		return 0, 0, false
	}

	friendships := 0
	for i := 0; i < n*2; i++ {
		a, b, ok := pick()
		if !ok {
			break
		}
		status := models.FriendStatusFriend
		if s.rng.Intn(3) == 0 {
			status = models.FriendStatusApplicationSent
		}
		f := &models.Friendship{
			UserID:   users[a].ID,
			FriendID: users[b].ID,
			Status:   status,
		}
		if err := s.db.Create(f).Error; err != nil {
			return nil, fmt.Errorf("seeding friendship: %w", err)
		}
		friendships++
	}

	enmities := 0
	for i := 0; i < n/4; i++ {
		a, b, ok := pick()
		if !ok {
			break
		}
		e := &models.Enmity{UserID: users[a].ID, EnemyID: users[b].ID}
		if err := s.db.Create(e).Error; err != nil {
			return nil, fmt.Errorf("seeding enmity: %w", err)
		}
		enmities++
	}

	log.Printf("Seeded social mesh: %d friendships, %d enmities", friendships, enmities)
	return users, nil
}
