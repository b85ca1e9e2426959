package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySessionKey struct {
	SessionKey string
}

func (s BySessionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_key = ?", s.SessionKey)
}

type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByStage struct {
	Stage string
}

func (s ByStage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stage = ?", s.Stage)
}

// TitleLike matches conversation titles case-insensitively.
type TitleLike struct {
	Query string
}

func (s TitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Query+"%")
}

// ContentLike matches message content case-insensitively.
type ContentLike struct {
	Query string
}

func (s ContentLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content ILIKE ?", "%"+s.Query+"%")
}
