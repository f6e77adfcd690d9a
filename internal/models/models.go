package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        string    `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	About        string    `gorm:"type:text" json:"about,omitempty"`
	LinkedinURL  string    `gorm:"size:255" json:"linkedin_url,omitempty"`
	GithubURL    string    `gorm:"size:255" json:"github_url,omitempty"`
	TwitterURL   string    `gorm:"size:255" json:"twitter_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`
}

type SkillOffer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SkillName  string    `gorm:"size:120;index;not null" json:"skill_name"`
	SkillLevel string    `gorm:"size:20;not null" json:"skill_level"` // beginner, intermediate, expert
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SkillRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SkillName   string    `gorm:"size:120;index;not null" json:"skill_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReadState is how a message's read flag is exposed over the API.
// Stored as a plain boolean column.
type ReadState string

const (
	MessageRead   ReadState = "read"
	MessageUnread ReadState = "unread"
)

func ReadStateOf(isRead bool) ReadState {
	if isRead {
		return MessageRead
	}
	return MessageUnread
}

type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint      `gorm:"index;not null" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

const (
	VideoStatusCreated  = "created"
	VideoStatusActive   = "active"
	VideoStatusEnded    = "ended"
	VideoStatusDeclined = "declined"
)

// VideoSession participants are kept as emails, not user foreign keys,
// so a session row survives either account going away.
type VideoSession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	RoomID          string     `gorm:"size:64;uniqueIndex;not null" json:"room_id"`
	User1Email      string     `gorm:"size:190;index;not null" json:"user1_email"`
	User2Email      string     `gorm:"size:190;index;not null" json:"user2_email"`
	MeetingURL      string     `gorm:"size:255;not null" json:"meeting_url"`
	Status          string     `gorm:"size:20;not null;default:created" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
}

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorEmail string    `gorm:"size:190;index;not null" json:"author_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"size:120" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type GroupChat struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

type GroupMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GroupID     uint      `gorm:"index;not null" json:"group_id"`
	Group       GroupChat `gorm:"foreignKey:GroupID" json:"-"`
	SenderEmail string    `gorm:"size:190;not null" json:"sender_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusDeclined = "declined"
)

type Booking struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LearnerEmail string    `gorm:"size:190;index;not null" json:"learner_email"`
	TeacherEmail string    `gorm:"size:190;index;not null" json:"teacher_email"`
	SkillName    string    `gorm:"size:120;not null" json:"skill_name"`
	Date         string    `gorm:"size:40;not null" json:"date"`
	Time         string    `gorm:"size:40;not null" json:"time"`
	Status       string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// All lists every table the API touches, in AutoMigrate order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&SkillOffer{},
		&SkillRequest{},
		&Message{},
		&VideoSession{},
		&Post{},
		&GroupChat{},
		&GroupMessage{},
		&Booking{},
	}
}
