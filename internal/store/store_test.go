package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillswap-be/internal/models"
)

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, opts)
}

func mustCreateUser(t *testing.T, s *Store, name, email, password string) models.User {
	t.Helper()
	u, err := s.CreateUser(name, email, password)
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t, Options{})

	first := mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	if _, err := s.CreateUser("Imposter", "alice@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second create err = %v, want ErrEmailTaken", err)
	}

	// The original record must be untouched.
	got, found, err := s.GetUserByEmail("alice@example.com")
	if err != nil || !found {
		t.Fatalf("lookup after conflict: found=%v err=%v", found, err)
	}
	if got.ID != first.ID || got.Name != "Alice" {
		t.Fatalf("user changed by failed registration: %+v", got)
	}
}

func TestVerifyPassword(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	ok, found, err := s.VerifyPassword("alice@example.com", "secret1")
	if err != nil || !found || !ok {
		t.Fatalf("correct password: ok=%v found=%v err=%v", ok, found, err)
	}

	ok, found, err = s.VerifyPassword("alice@example.com", "wrong")
	if err != nil || !found || ok {
		t.Fatalf("wrong password: ok=%v found=%v err=%v", ok, found, err)
	}

	// An absent email is a lookup miss, never a verification failure.
	ok, found, err = s.VerifyPassword("nobody@example.com", "secret1")
	if err != nil {
		t.Fatalf("absent email err = %v", err)
	}
	if found || ok {
		t.Fatalf("absent email: ok=%v found=%v, want false/false", ok, found)
	}
}

func TestPasswordNeverStoredPlain(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	u, _, err := s.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.PasswordHash == "secret1" || u.PasswordHash == "" {
		t.Fatalf("password stored as %q", u.PasswordHash)
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	upd := ProfileUpdate{
		Name:        "Alice B",
		About:       "guitar teacher",
		LinkedinURL: "https://linkedin.com/in/aliceb",
		GithubURL:   "https://github.com/aliceb",
	}
	u, found, err := s.UpdateProfile("alice@example.com", upd)
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if u.Name != "Alice B" || u.About != "guitar teacher" || u.GithubURL != "https://github.com/aliceb" {
		t.Fatalf("profile not applied: %+v", u)
	}

	if _, found, err := s.UpdateProfile("nobody@example.com", upd); err != nil || found {
		t.Fatalf("update absent user: found=%v err=%v", found, err)
	}
}

func TestListUsers(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")
	mustCreateUser(t, s, "Bob", "bob@example.com", "secret2")

	users, err := s.ListUsers()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
}

func TestGetUserProfileLoadsBothSkillLists(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	if _, found, err := s.AddSkillOffer("alice@example.com", "guitar", "expert", ""); err != nil || !found {
		t.Fatalf("add offer: found=%v err=%v", found, err)
	}
	if _, found, err := s.AddSkillRequest("alice@example.com", "spanish", "conversational practice"); err != nil || !found {
		t.Fatalf("add request: found=%v err=%v", found, err)
	}

	profile, found, err := s.GetUserProfile("alice@example.com")
	if err != nil || !found {
		t.Fatalf("profile: found=%v err=%v", found, err)
	}
	if len(profile.SkillsOffered) != 1 || profile.SkillsOffered[0].SkillName != "guitar" {
		t.Fatalf("offers = %+v", profile.SkillsOffered)
	}
	if len(profile.SkillsNeeded) != 1 || profile.SkillsNeeded[0].SkillName != "spanish" {
		t.Fatalf("needs = %+v", profile.SkillsNeeded)
	}

	if _, found, _ := s.GetUserProfile("nobody@example.com"); found {
		t.Fatal("profile of absent user reported found")
	}
}

func TestAddSkillOfferForAbsentUser(t *testing.T) {
	s := newTestStore(t, Options{})

	if _, found, err := s.AddSkillOffer("nobody@example.com", "guitar", "expert", ""); err != nil || found {
		t.Fatalf("offer: found=%v err=%v", found, err)
	}
	if _, found, err := s.AddSkillRequest("nobody@example.com", "guitar", ""); err != nil || found {
		t.Fatalf("request: found=%v err=%v", found, err)
	}

	offers, err := s.ListSkillOffers()
	if err != nil || len(offers) != 0 {
		t.Fatalf("offers after failed adds = %d (err %v)", len(offers), err)
	}
}

func TestDuplicateOffersAllowed(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	for i := 0; i < 2; i++ {
		if _, found, err := s.AddSkillOffer("alice@example.com", "guitar", "expert", ""); err != nil || !found {
			t.Fatalf("add #%d: found=%v err=%v", i, found, err)
		}
	}

	offers, err := s.ListSkillOffers()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("len = %d, want 2 (no uniqueness constraint)", len(offers))
	}
}

func TestEnsureCategory(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")

	offer, _, err := s.AddSkillOffer("alice@example.com", "guitar", "expert", "Music")
	if err != nil {
		t.Fatalf("add offer: %v", err)
	}
	if offer.CategoryID == nil {
		t.Fatal("offer has no category")
	}

	again, err := s.EnsureCategory("Music")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if again.ID != *offer.CategoryID {
		t.Fatalf("category re-created: %d vs %d", again.ID, *offer.CategoryID)
	}

	cats, err := s.ListCategories()
	if err != nil || len(cats) != 1 {
		t.Fatalf("categories = %d (err %v), want 1", len(cats), err)
	}
}

func TestUserTimestampsAssigned(t *testing.T) {
	s := newTestStore(t, Options{})
	u := mustCreateUser(t, s, "Alice", "alice@example.com", "secret1")
	if u.CreatedAt.IsZero() || time.Since(u.CreatedAt) > time.Minute {
		t.Fatalf("created_at = %v", u.CreatedAt)
	}
}
