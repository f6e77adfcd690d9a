package store

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillswap-be/internal/models"
)

// ErrEmailTaken is returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

type Options struct {
	MeetingBaseURL string
	RingTimeout    time.Duration
}

// Store is the data-access layer. One instance wraps the shared *gorm.DB
// handle and is passed down to every handler; there is no package state.
type Store struct {
	db             *gorm.DB
	meetingBaseURL string
	ringTimeout    time.Duration
}

func New(db *gorm.DB, opts Options) *Store {
	base := opts.MeetingBaseURL
	if base == "" {
		base = "https://meet.jit.si"
	}
	return &Store{db: db, meetingBaseURL: base, ringTimeout: opts.RingTimeout}
}

func (s *Store) CreateUser(name, email, password string) (models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, bool, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *Store) GetUserByID(id uint) (models.User, bool, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ProfileUpdate carries the mutable profile fields; everything else on a
// user is fixed at registration.
type ProfileUpdate struct {
	Name        string
	About       string
	LinkedinURL string
	GithubURL   string
	TwitterURL  string
}

func (s *Store) UpdateProfile(email string, upd ProfileUpdate) (models.User, bool, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return models.User{}, found, err
	}

	u.Name = upd.Name
	u.About = upd.About
	u.LinkedinURL = upd.LinkedinURL
	u.GithubURL = upd.GithubURL
	u.TwitterURL = upd.TwitterURL
	if err := s.db.Save(&u).Error; err != nil {
		return models.User{}, false, err
	}
	return u, true, nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// found=false means no such user, which callers must keep distinct from a
// plain mismatch.
func (s *Store) VerifyPassword(email, password string) (ok bool, found bool, err error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return false, found, err
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil, true, nil
}
