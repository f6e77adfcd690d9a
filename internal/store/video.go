package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillswap-be/internal/models"
)

// CreateVideoSession mints a room, builds its meeting URL off the external
// provider's base, and persists the session as "created". user1 is the
// caller, user2 the invitee; neither email is checked against the user
// table.
func (s *Store) CreateVideoSession(user1Email, user2Email string) (models.VideoSession, error) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	roomID := fmt.Sprintf("skillswap-%d-%s", time.Now().Unix(), suffix)

	sess := models.VideoSession{
		RoomID:     roomID,
		User1Email: user1Email,
		User2Email: user2Email,
		MeetingURL: fmt.Sprintf("%s/%s", strings.TrimRight(s.meetingBaseURL, "/"), roomID),
		Status:     models.VideoStatusCreated,
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return models.VideoSession{}, err
	}
	return sess, nil
}

func (s *Store) GetVideoSession(roomID string) (models.VideoSession, bool, error) {
	var sess models.VideoSession
	if err := s.db.Where("room_id = ?", roomID).First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.VideoSession{}, false, nil
		}
		return models.VideoSession{}, false, err
	}
	return sess, true, nil
}

// ListVideoSessions returns every session the email took part in, on
// either side of the call, newest first.
func (s *Store) ListVideoSessions(email string) ([]models.VideoSession, error) {
	var sessions []models.VideoSession
	if err := s.db.
		Where("user1_email = ? OR user2_email = ?", email, email).
		Order("created_at desc, id desc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateVideoSessionStatus moves the session along its state machine.
// "active" stamps the start time exactly once, so repeat calls are
// idempotent. "ended" stamps the end time and fixes the duration to the
// whole seconds elapsed since start; a session already ended keeps its
// original timestamps and duration.
func (s *Store) UpdateVideoSessionStatus(roomID, status string) (models.VideoSession, bool, error) {
	sess, found, err := s.GetVideoSession(roomID)
	if err != nil || !found {
		return models.VideoSession{}, found, err
	}

	now := time.Now()
	switch status {
	case models.VideoStatusActive:
		if sess.StartedAt == nil {
			sess.StartedAt = &now
		}
		sess.Status = models.VideoStatusActive
	case models.VideoStatusEnded:
		if sess.EndedAt == nil {
			sess.EndedAt = &now
			if sess.StartedAt != nil {
				d := int(now.Sub(*sess.StartedAt).Seconds())
				sess.DurationSeconds = &d
			}
		}
		sess.Status = models.VideoStatusEnded
	default:
		sess.Status = status
	}

	if err := s.db.Save(&sess).Error; err != nil {
		return models.VideoSession{}, false, err
	}
	return sess, true, nil
}

// DeclineVideoSession is the terminal created -> declined edge; no
// timestamps are stamped.
func (s *Store) DeclineVideoSession(roomID string) (models.VideoSession, bool, error) {
	sess, found, err := s.GetVideoSession(roomID)
	if err != nil || !found {
		return models.VideoSession{}, found, err
	}

	sess.Status = models.VideoStatusDeclined
	if err := s.db.Save(&sess).Error; err != nil {
		return models.VideoSession{}, false, err
	}
	return sess, true, nil
}

// CheckIncomingCall finds the newest session still ringing for the invitee.
// Sessions older than the ring timeout no longer count as ringing; a zero
// timeout disables the cutoff.
func (s *Store) CheckIncomingCall(email string) (models.VideoSession, bool, error) {
	q := s.db.Where("user2_email = ? AND status = ?", email, models.VideoStatusCreated)
	if s.ringTimeout > 0 {
		q = q.Where("created_at > ?", time.Now().Add(-s.ringTimeout))
	}

	var sess models.VideoSession
	if err := q.Order("created_at desc, id desc").First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.VideoSession{}, false, nil
		}
		return models.VideoSession{}, false, err
	}
	return sess, true, nil
}
