package unitofwork

import (
	"context"

	"agent-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AgentRepository() contract.AgentRepository
	ChatRepository() contract.ChatRepository
	MessageRepository() contract.MessageRepository
}
