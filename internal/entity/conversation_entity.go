package entity

import (
	"time"

	"github.com/google/uuid"

	"idea-shaper-be/pkg/dialog"
)

type Conversation struct {
	Id               uuid.UUID
	SessionKey       string
	UserId           *uuid.UUID
	Title            string
	Stage            dialog.Stage
	InteractionCount int
	Idea             dialog.Idea
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}

type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	Content        string
	Persona        string
	Provider       string
	Suggestions    []string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

type Proposal struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Title          string
	Summary        string
	Problem        string
	Solution       string
	Features       []string
	TechStack      []string
	NextSteps      []string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
