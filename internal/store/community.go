package store

import (
	"errors"

	"gorm.io/gorm"

	"skillswap-be/internal/models"
)

func (s *Store) CreatePost(authorEmail, content, category string) (models.Post, error) {
	post := models.Post{AuthorEmail: authorEmail, Content: content, Category: category}
	if err := s.db.Create(&post).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *Store) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("id desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// SeedDefaultGroups inserts the fixed starter rooms on a fresh database.
// A non-empty table means a previous boot already seeded (or an operator
// edited the rooms), so it does nothing.
func (s *Store) SeedDefaultGroups() error {
	var count int64
	if err := s.db.Model(&models.GroupChat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	groups := []models.GroupChat{
		{Name: "Python & Coding", Description: "Discussion for tech learners"},
		{Name: "Language Exchange", Description: "Practice speaking different languages"},
		{Name: "Music & Arts", Description: "Share your creative progress"},
	}
	return s.db.Create(&groups).Error
}

func (s *Store) ListGroups() ([]models.GroupChat, error) {
	var groups []models.GroupChat
	if err := s.db.Order("id asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Store) ListGroupMessages(groupID uint) ([]models.GroupMessage, error) {
	var msgs []models.GroupMessage
	if err := s.db.Where("group_id = ?", groupID).Order("id asc").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// AddGroupMessage appends to a room. The sender email is taken as-is;
// group membership is open and unchecked.
func (s *Store) AddGroupMessage(groupID uint, senderEmail, content string) (models.GroupMessage, error) {
	msg := models.GroupMessage{GroupID: groupID, SenderEmail: senderEmail, Content: content}
	if err := s.db.Create(&msg).Error; err != nil {
		return models.GroupMessage{}, err
	}
	return msg, nil
}

func (s *Store) CreateBooking(learnerEmail, teacherEmail, skillName, date, timeSlot string) (models.Booking, error) {
	booking := models.Booking{
		LearnerEmail: learnerEmail,
		TeacherEmail: teacherEmail,
		SkillName:    skillName,
		Date:         date,
		Time:         timeSlot,
		Status:       models.BookingStatusPending,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// ListBookings returns every booking the email appears in, as learner or
// teacher.
func (s *Store) ListBookings(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.
		Where("learner_email = ? OR teacher_email = ?", email, email).
		Order("id desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus stores whatever status the caller supplies; the
// pending/accepted/declined vocabulary is a convention, not a constraint.
func (s *Store) UpdateBookingStatus(id uint, status string) (models.Booking, bool, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, false, nil
		}
		return models.Booking{}, false, err
	}

	booking.Status = status
	if err := s.db.Save(&booking).Error; err != nil {
		return models.Booking{}, false, err
	}
	return booking, true, nil
}
