package specification

import (
	"agent-chat-be/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy restricts chats to the owner named by a SessionContext. An invalid
// context matches nothing.
type OwnedBy struct {
	Session entity.SessionContext
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	if userId, ok := s.Session.UserId(); ok {
		return db.Where("user_id = ?", userId)
	}
	if token := s.Session.SessionToken(); token != "" {
		return db.Where("user_id IS NULL AND user_session = ?", token)
	}
	return db.Where("1 = 0")
}

type ByChatID struct {
	ChatID uuid.UUID
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

type ByRole struct {
	Role entity.MessageRole
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", string(s.Role))
}

// Latest orders newest first and keeps n rows.
type Latest struct {
	N int
}

func (s Latest) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Limit(s.N)
}
