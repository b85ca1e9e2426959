package contract

import (
	"context"

	"github.com/google/uuid"

	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	Update(ctx context.Context, conversation *entity.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ConversationMessageRepository interface {
	Create(ctx context.Context, message *entity.ConversationMessage) error
	CreateBatch(ctx context.Context, messages []*entity.ConversationMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByConversationId(ctx context.Context, conversationId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *entity.Proposal) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Proposal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Proposal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
