package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Conversation struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionKey       string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserId           *uuid.UUID     `gorm:"type:uuid;index"` // nil for anonymous sessions
	Title            string         `gorm:"type:text;not null"`
	Stage            string         `gorm:"type:varchar(50);not null;default:'initial'"`
	InteractionCount int            `gorm:"not null;default:0"`
	Idea             datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type ConversationMessage struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Role           string         `gorm:"type:varchar(50);not null"`
	Content        string         `gorm:"type:text;not null"`
	Persona        string         `gorm:"type:varchar(50)"`
	Provider       string         `gorm:"type:varchar(50)"`
	Suggestions    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}

type Proposal struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title          string         `gorm:"type:text;not null"`
	Summary        string         `gorm:"type:text;not null"`
	Problem        string         `gorm:"type:text"`
	Solution       string         `gorm:"type:text"`
	Features       datatypes.JSON `gorm:"type:jsonb"`
	TechStack      datatypes.JSON `gorm:"type:jsonb"`
	NextSteps      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Proposal) TableName() string {
	return "proposals"
}
