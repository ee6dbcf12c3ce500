package entity

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id           uuid.UUID
	AgentId      string
	Title        string
	UserId       *uuid.UUID
	SessionToken *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
