package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/model"
	"idea-shaper-be/pkg/dialog"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

// Conversation Mappers

func (m *ConversationMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var idea dialog.Idea
	if len(c.Idea) > 0 {
		// Corrupt idea JSON degrades to an empty idea, not an error
		_ = json.Unmarshal(c.Idea, &idea)
	}

	return &entity.Conversation{
		Id:               c.Id,
		SessionKey:       c.SessionKey,
		UserId:           c.UserId,
		Title:            c.Title,
		Stage:            dialog.ParseStage(c.Stage),
		InteractionCount: c.InteractionCount,
		Idea:             idea,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
		IsDeleted:        c.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	ideaJSON, _ := json.Marshal(c.Idea)

	return &model.Conversation{
		Id:               c.Id,
		SessionKey:       c.SessionKey,
		UserId:           c.UserId,
		Title:            c.Title,
		Stage:            string(c.Stage),
		InteractionCount: c.InteractionCount,
		Idea:             datatypes.JSON(ideaJSON),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAt,
		DeletedAt:        deletedAt,
	}
}

// Message Mappers

func (m *ConversationMapper) MessageToEntity(msg *model.ConversationMessage) *entity.ConversationMessage {
	if msg == nil {
		return nil
	}

	var deletedAt *time.Time
	if msg.DeletedAt.Valid {
		t := msg.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !msg.UpdatedAt.IsZero() {
		t := msg.UpdatedAt
		updatedAt = &t
	}

	var suggestions []string
	if len(msg.Suggestions) > 0 {
		_ = json.Unmarshal(msg.Suggestions, &suggestions)
	}

	return &entity.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		Persona:        msg.Persona,
		Provider:       msg.Provider,
		Suggestions:    suggestions,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      msg.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.ConversationMessage) *model.ConversationMessage {
	if msg == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if msg.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *msg.DeletedAt, Valid: true}
	} else if msg.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if msg.UpdatedAt != nil {
		updatedAt = *msg.UpdatedAt
	}

	var suggestionsJSON datatypes.JSON
	if len(msg.Suggestions) > 0 {
		b, _ := json.Marshal(msg.Suggestions)
		suggestionsJSON = datatypes.JSON(b)
	}

	return &model.ConversationMessage{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		Persona:        msg.Persona,
		Provider:       msg.Provider,
		Suggestions:    suggestionsJSON,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

// Proposal Mappers

func (m *ConversationMapper) ProposalToEntity(p *model.Proposal) *entity.Proposal {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	var features, techStack, nextSteps []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	if len(p.TechStack) > 0 {
		_ = json.Unmarshal(p.TechStack, &techStack)
	}
	if len(p.NextSteps) > 0 {
		_ = json.Unmarshal(p.NextSteps, &nextSteps)
	}

	return &entity.Proposal{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		Title:          p.Title,
		Summary:        p.Summary,
		Problem:        p.Problem,
		Solution:       p.Solution,
		Features:       features,
		TechStack:      techStack,
		NextSteps:      nextSteps,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      p.DeletedAt.Valid,
	}
}

func (m *ConversationMapper) ProposalToModel(p *entity.Proposal) *model.Proposal {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	featuresJSON, _ := json.Marshal(p.Features)
	techStackJSON, _ := json.Marshal(p.TechStack)
	nextStepsJSON, _ := json.Marshal(p.NextSteps)

	return &model.Proposal{
		Id:             p.Id,
		ConversationId: p.ConversationId,
		Title:          p.Title,
		Summary:        p.Summary,
		Problem:        p.Problem,
		Solution:       p.Solution,
		Features:       datatypes.JSON(featuresJSON),
		TechStack:      datatypes.JSON(techStackJSON),
		NextSteps:      datatypes.JSON(nextStepsJSON),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}
