package store

import (
	"time"

	"skillswap-be/internal/models"
)

// MessageView is a message row annotated with both parties for rendering.
// A deleted party shows up as "Unknown" with an empty email.
type MessageView struct {
	ID            uint             `json:"id"`
	SenderEmail   string           `json:"sender_email"`
	SenderName    string           `json:"sender_name"`
	ReceiverEmail string           `json:"receiver_email"`
	ReceiverName  string           `json:"receiver_name"`
	Content       string           `json:"content"`
	Status        models.ReadState `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SendMessage inserts a message from sender to receiver. Both must exist;
// found=false reports which lookup failed without writing anything.
func (s *Store) SendMessage(senderEmail, receiverEmail, content string) (models.Message, bool, error) {
	sender, found, err := s.GetUserByEmail(senderEmail)
	if err != nil || !found {
		return models.Message{}, found, err
	}
	receiver, found, err := s.GetUserByEmail(receiverEmail)
	if err != nil || !found {
		return models.Message{}, found, err
	}

	msg := models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return models.Message{}, false, err
	}
	return msg, true, nil
}

// ListUserMessages returns every message the user sent or received,
// newest first.
func (s *Store) ListUserMessages(email string) ([]MessageView, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if !found {
		return []MessageView{}, nil
	}

	var msgs []models.Message
	if err := s.db.
		Where("sender_id = ? OR receiver_id = ?", u.ID, u.ID).
		Order("created_at desc, id desc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return s.annotate(msgs)
}

// GetConversation returns the messages exchanged between exactly the two
// users, oldest first. An unknown participant yields an empty list.
func (s *Store) GetConversation(email1, email2 string) ([]MessageView, error) {
	u1, found1, err := s.GetUserByEmail(email1)
	if err != nil {
		return nil, err
	}
	u2, found2, err := s.GetUserByEmail(email2)
	if err != nil {
		return nil, err
	}
	if !found1 || !found2 {
		return []MessageView{}, nil
	}

	var msgs []models.Message
	if err := s.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			u1.ID, u2.ID, u2.ID, u1.ID).
		Order("created_at asc, id asc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return s.annotate(msgs)
}

// MarkMessagesRead flips every unread message from otherEmail to userEmail
// to read and returns how many rows changed.
func (s *Store) MarkMessagesRead(userEmail, otherEmail string) (int64, error) {
	u, foundU, err := s.GetUserByEmail(userEmail)
	if err != nil {
		return 0, err
	}
	other, foundO, err := s.GetUserByEmail(otherEmail)
	if err != nil {
		return 0, err
	}
	if !foundU || !foundO {
		return 0, nil
	}

	res := s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", other.ID, u.ID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// UnreadCount counts unread messages addressed to the user.
func (s *Store) UnreadCount(email string) (int64, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return 0, err
	}

	var count int64
	err = s.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", u.ID, false).
		Count(&count).Error
	return count, err
}

func (s *Store) annotate(msgs []models.Message) ([]MessageView, error) {
	users := map[uint]*models.User{}
	lookup := func(id uint) (*models.User, error) {
		if u, seen := users[id]; seen {
			return u, nil
		}
		u, found, err := s.GetUserByID(id)
		if err != nil {
			return nil, err
		}
		if !found {
			users[id] = nil
			return nil, nil
		}
		users[id] = &u
		return &u, nil
	}

	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		v := MessageView{
			ID:           m.ID,
			SenderName:   "Unknown",
			ReceiverName: "Unknown",
			Content:      m.Content,
			Status:       models.ReadStateOf(m.IsRead),
			CreatedAt:    m.CreatedAt,
		}
		if sender, err := lookup(m.SenderID); err != nil {
			return nil, err
		} else if sender != nil {
			v.SenderName, v.SenderEmail = sender.Name, sender.Email
		}
		if receiver, err := lookup(m.ReceiverID); err != nil {
			return nil, err
		} else if receiver != nil {
			v.ReceiverName, v.ReceiverEmail = receiver.Name, receiver.Email
		}
		views = append(views, v)
	}
	return views, nil
}
