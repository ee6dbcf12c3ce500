package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"agent-chat-be/internal/entity"
	"agent-chat-be/internal/model"
	"agent-chat-be/internal/repository/specification"
	"agent-chat-be/internal/repository/unitofwork"
	"agent-chat-be/pkg/artifact"
	"agent-chat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err, "Failed to connect to DB")
	require.NoError(t, db.AutoMigrate(&model.Agent{}, &model.Chat{}, &model.Message{}))
	return db
}

func TestGormRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	agentId := "it-agent-" + uuid.NewString()[:8]
	owner := entity.Anonymous("it-" + uuid.NewString())
	stranger := entity.Anonymous("it-" + uuid.NewString())

	uow := uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.AgentRepository().Create(ctx, &entity.Agent{
		Id: agentId, Name: "IT Agent", SystemPrompt: "p", Suggestions: []string{"a"}, Active: true, Category: "general",
	}))
	defer db.Delete(&model.Agent{}, "id = ?", agentId)

	chat := &entity.Chat{Id: uuid.New(), AgentId: agentId, Title: "Integration"}
	owner.Stamp(chat)
	require.NoError(t, uow.ChatRepository().Create(ctx, chat))
	defer db.Delete(&model.Chat{}, "id = ?", chat.Id)

	t.Run("agent round trip", func(t *testing.T) {
		got, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: agentId})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"a"}, got.Suggestions)
		assert.Equal(t, entity.AgentStatusActive, got.Status())
	})

	t.Run("ownership filter", func(t *testing.T) {
		mine, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chat.Id}, specification.OwnedBy{Session: owner})
		require.NoError(t, err)
		assert.NotNil(t, mine)

		theirs, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chat.Id}, specification.OwnedBy{Session: stranger})
		require.NoError(t, err)
		assert.Nil(t, theirs)
	})

	t.Run("messages keep artifacts and order", func(t *testing.T) {
		base := time.Now()
		doc := &entity.Artifact{ID: uuid.NewString(), Type: artifact.KindText, Title: "Doc", Content: "## Doc"}
		for i, m := range []*entity.Message{
			{Id: uuid.New(), ChatId: chat.Id, Role: entity.MessageRoleUser, Content: "write", CreatedAt: base},
			{Id: uuid.New(), ChatId: chat.Id, Role: entity.MessageRoleAssistant, Content: "done", Artifact: doc, CreatedAt: base.Add(time.Second)},
		} {
			require.NoError(t, uow.MessageRepository().Create(ctx, m), "message %d", i)
		}

		latest, err := uow.MessageRepository().FindAll(ctx, specification.ByChatID{ChatID: chat.Id}, specification.Latest{N: 1})
		require.NoError(t, err)
		require.Len(t, latest, 1)
		require.NotNil(t, latest[0].Artifact)
		assert.Equal(t, doc.Title, latest[0].Artifact.Title)

		last, err := uow.MessageRepository().LastByChatIds(ctx, []uuid.UUID{chat.Id})
		require.NoError(t, err)
		assert.Equal(t, "done", last[chat.Id].Content)
	})

	t.Run("delete cascades in one transaction", func(t *testing.T) {
		tx := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, tx.Begin(ctx))
		defer tx.Rollback()

		require.NoError(t, tx.MessageRepository().DeleteByChatId(ctx, chat.Id))
		require.NoError(t, tx.ChatRepository().Delete(ctx, chat.Id))
		require.NoError(t, tx.Commit())

		count, err := uow.MessageRepository().Count(ctx, specification.ByChatID{ChatID: chat.Id})
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
