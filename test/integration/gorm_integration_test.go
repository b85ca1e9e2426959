package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
	"idea-shaper-be/pkg/database"
	"idea-shaper-be/pkg/dialog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ConversationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Conversation Repository", func(t *testing.T) {
		count, err := uow.ConversationRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Conversation count: %d", count)
	})

	t.Run("Check Transactional Conversation Write", func(t *testing.T) {
		ctx := context.Background()

		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		conv := &entity.Conversation{
			SessionKey: uuid.NewString(),
			Title:      "Integration Test Conversation",
			Stage:      dialog.StageInitial,
		}
		err = uow.ConversationRepository().Create(ctx, conv)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, conv.Id)

		messages := []*entity.ConversationMessage{
			{ConversationId: conv.Id, Role: "user", Content: "I want to build an app"},
			{ConversationId: conv.Id, Role: "assistant", Content: "Tell me more about the problem it solves."},
		}
		err = uow.ConversationMessageRepository().CreateBatch(ctx, messages)
		assert.NoError(t, err)

		found, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: conv.SessionKey})
		assert.NoError(t, err)
		assert.NotNil(t, found)

		// Rollback via defer keeps the database clean
		t.Log("Successfully wrote Conversation with Messages in Transaction")
	})
}
