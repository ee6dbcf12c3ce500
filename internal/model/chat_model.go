package model

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgentId     string     `gorm:"type:text;not null;index"`
	Title       string     `gorm:"type:text;not null"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"`
	UserSession *string    `gorm:"type:text;index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime;index"`

	Messages []Message `gorm:"foreignKey:ChatId;constraint:OnDelete:CASCADE"`
}

func (Chat) TableName() string {
	return "chats"
}
