package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"idea-shaper-be/internal/constant"
	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/repository/memory"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
	"idea-shaper-be/pkg/dialog"
	"idea-shaper-be/pkg/events"
	"idea-shaper-be/pkg/llm/factory"
	"idea-shaper-be/pkg/persona"
)

const defaultConversationTitle = "New Conversation"

type IChatService interface {
	StartConversation(ctx context.Context, userId *uuid.UUID, req *dto.StartConversationRequest) (*dto.ConversationResponse, error)
	ProcessMessage(ctx context.Context, sessionKey string, req *dto.SendMessageRequest) (*dto.ChatResponse, error)
	PersonaMessage(ctx context.Context, sessionKey string, req *dto.PersonaMessageRequest) (*dto.ChatResponse, error)
	MultiPerspective(ctx context.Context, sessionKey string, req *dto.MultiPerspectiveRequest) (*dto.MultiPerspectiveResponse, error)
	GenerateProposal(ctx context.Context, sessionKey string) (*dto.ProposalResponse, error)
	GetConversation(ctx context.Context, sessionKey string) (*dto.ConversationResponse, error)
	ListConversations(ctx context.Context, userId *uuid.UUID) ([]*dto.ConversationResponse, error)
	DeleteConversation(ctx context.Context, sessionKey string) error
	ListPersonas() []*dto.PersonaResponse
	ListProviders() *dto.ProvidersResponse
}

// UsageRecorder is the slice of analytics the chat flow reports into.
// Failures are the recorder's problem; chat never blocks on it.
type UsageRecorder interface {
	RecordProviderCall(ctx context.Context, provider string)
	RecordPersonaCall(ctx context.Context, personaID string)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	cache       *memory.ConversationCache
	responder   *dialog.Responder
	dispatcher  *dialog.Dispatcher
	synthesizer *dialog.Synthesizer
	registry    *factory.Registry
	publisher   IPublisherService
	usage       UsageRecorder
	logger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.ConversationCache,
	responder *dialog.Responder,
	dispatcher *dialog.Dispatcher,
	synthesizer *dialog.Synthesizer,
	registry *factory.Registry,
	publisher IPublisherService,
	usage UsageRecorder,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		cache:       cache,
		responder:   responder,
		dispatcher:  dispatcher,
		synthesizer: synthesizer,
		registry:    registry,
		publisher:   publisher,
		usage:       usage,
		logger:      log,
	}
}

func (s *chatService) StartConversation(ctx context.Context, userId *uuid.UUID, req *dto.StartConversationRequest) (*dto.ConversationResponse, error) {
	tmpl := findTemplate(req.TemplateID)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		if tmpl != nil {
			title = tmpl.Name
		} else {
			title = defaultConversationTitle
		}
	}

	conv := &entity.Conversation{
		SessionKey: uuid.NewString(),
		UserId:     userId,
		Title:      title,
		Stage:      dialog.StageInitial,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	state := dialog.NewState(conv.SessionKey)
	if tmpl != nil {
		// Template conversations open with the template's framing and
		// its prompts as the first suggestions.
		opener := tmpl.Description + ". Where would you like to start?"
		state.AppendAssistant(opener, tmpl.Prompts)
		msg := &entity.ConversationMessage{
			ConversationId: conv.Id,
			Role:           constant.ChatMessageRoleAssistant,
			Content:        opener,
			Suggestions:    tmpl.Prompts,
		}
		if err := uow.ConversationMessageRepository().Create(ctx, msg); err != nil {
			return nil, fmt.Errorf("seed template message: %w", err)
		}
	}
	s.cache.Save(state)
	s.publishEvent(ctx, events.NewConversationStarted(conv.SessionKey))

	s.logger.Info("ChatService", "Conversation started", map[string]interface{}{
		"session_key": conv.SessionKey,
	})

	return conversationToResponse(conv, nil), nil
}

func (s *chatService) ProcessMessage(ctx context.Context, sessionKey string, req *dto.SendMessageRequest) (*dto.ChatResponse, error) {
	state, conv, err := s.loadState(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	before := len(state.Messages)
	stageBefore := state.Stage

	reply := s.responder.Respond(ctx, state, req.Message)

	if err := s.persistTurn(ctx, conv, state, state.Messages[before:], req.Message); err != nil {
		return nil, err
	}

	if reply.Provider != "" {
		s.usage.RecordProviderCall(ctx, reply.Provider)
	}
	s.publishEvent(ctx, events.NewMessageProcessed(sessionKey, string(state.Stage), state.InteractionCount))
	if reply.Advanced {
		s.publishEvent(ctx, events.NewStageAdvanced(sessionKey, string(stageBefore), string(state.Stage)))
	}

	return &dto.ChatResponse{
		SessionKey:       sessionKey,
		Response:         reply.Content,
		Stage:            string(state.Stage),
		StageAdvanced:    reply.Advanced,
		InteractionCount: state.InteractionCount,
		Suggestions:      reply.Suggestions,
		Provider:         reply.Provider,
	}, nil
}

func (s *chatService) PersonaMessage(ctx context.Context, sessionKey string, req *dto.PersonaMessageRequest) (*dto.ChatResponse, error) {
	p, ok := persona.Get(req.Persona)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPersona, req.Persona)
	}

	state, conv, err := s.loadState(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	before := len(state.Messages)
	reply := s.responder.RespondAs(ctx, state, req.Message, p, req.Provider)

	if err := s.persistTurn(ctx, conv, state, state.Messages[before:], req.Message); err != nil {
		return nil, err
	}

	if reply.Provider != "" {
		s.usage.RecordProviderCall(ctx, reply.Provider)
	}
	s.usage.RecordPersonaCall(ctx, p.ID)
	s.publishEvent(ctx, events.NewMessageProcessed(sessionKey, string(state.Stage), state.InteractionCount))

	return &dto.ChatResponse{
		SessionKey:       sessionKey,
		Response:         reply.Content,
		Stage:            string(state.Stage),
		StageAdvanced:    reply.Advanced,
		InteractionCount: state.InteractionCount,
		Suggestions:      reply.Suggestions,
		Provider:         reply.Provider,
		Persona:          reply.Persona,
	}, nil
}

func (s *chatService) MultiPerspective(ctx context.Context, sessionKey string, req *dto.MultiPerspectiveRequest) (*dto.MultiPerspectiveResponse, error) {
	state, conv, err := s.loadState(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	personas := resolvePersonas(req.Personas)

	before := len(state.Messages)
	perspectives := s.dispatcher.Dispatch(ctx, state, req.Message, personas)

	if err := s.persistTurn(ctx, conv, state, state.Messages[before:], req.Message); err != nil {
		return nil, err
	}

	out := make([]dto.PerspectiveResponse, len(perspectives))
	for i, p := range perspectives {
		out[i] = dto.PerspectiveResponse{
			PersonaID:   p.PersonaID,
			PersonaName: p.PersonaName,
			Provider:    p.Provider,
			Content:     p.Content,
		}
		s.usage.RecordProviderCall(ctx, p.Provider)
		s.usage.RecordPersonaCall(ctx, p.PersonaID)
	}
	s.publishEvent(ctx, events.NewMessageProcessed(sessionKey, string(state.Stage), state.InteractionCount))

	return &dto.MultiPerspectiveResponse{
		SessionKey:   sessionKey,
		Stage:        string(state.Stage),
		Perspectives: out,
	}, nil
}

func (s *chatService) GenerateProposal(ctx context.Context, sessionKey string) (*dto.ProposalResponse, error) {
	state, conv, err := s.loadState(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	proposal := s.synthesizer.Synthesize(ctx, state)

	record := &entity.Proposal{
		ConversationId: conv.Id,
		Title:          proposal.Title,
		Summary:        proposal.Summary,
		Problem:        proposal.Problem,
		Solution:       proposal.Solution,
		Features:       proposal.Features,
		TechStack:      proposal.TechStack,
		NextSteps:      proposal.NextSteps,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProposalRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("save proposal: %w", err)
	}

	s.publishEvent(ctx, events.NewProposalGenerated(sessionKey, proposal.Title))

	return &dto.ProposalResponse{
		SessionKey: sessionKey,
		Title:      proposal.Title,
		Summary:    proposal.Summary,
		Problem:    proposal.Problem,
		Solution:   proposal.Solution,
		Features:   proposal.Features,
		TechStack:  proposal.TechStack,
		NextSteps:  proposal.NextSteps,
		CreatedAt:  record.CreatedAt,
	}, nil
}

func (s *chatService) GetConversation(ctx context.Context, sessionKey string) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conv, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	messages, err := uow.ConversationMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conv.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	return conversationToResponse(conv, messages), nil
}

func (s *chatService) ListConversations(ctx context.Context, userId *uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "updated_at", Desc: true},
	}
	if userId != nil {
		specs = append(specs, specification.ByUserID{UserID: *userId})
	}

	convs, err := uow.ConversationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ConversationResponse, len(convs))
	for i, c := range convs {
		out[i] = conversationToResponse(c, nil)
	}
	return out, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, sessionKey string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conv, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return err
	}
	if conv == nil {
		return ErrConversationNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ConversationMessageRepository().DeleteAllByConversationId(ctx, conv.Id); err != nil {
		return err
	}
	if err := uow.ConversationRepository().Delete(ctx, conv.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Delete(sessionKey)
	return nil
}

func (s *chatService) ListPersonas() []*dto.PersonaResponse {
	all := persona.All()
	out := make([]*dto.PersonaResponse, len(all))
	for i, p := range all {
		out[i] = &dto.PersonaResponse{ID: p.ID, Name: p.Name}
	}
	return out
}

func (s *chatService) ListProviders() *dto.ProvidersResponse {
	return &dto.ProvidersResponse{Providers: s.registry.Names()}
}

// loadState resolves conversation state cache-first, rebuilding from
// storage on a miss. Storage is the source of truth; the cache only
// mirrors it.
func (s *chatService) loadState(ctx context.Context, sessionKey string) (*dialog.State, *entity.Conversation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conv, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		return nil, nil, ErrConversationNotFound
	}

	if state, found := s.cache.Get(sessionKey); found {
		return state, conv, nil
	}

	messages, err := uow.ConversationMessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conv.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, nil, err
	}

	state := &dialog.State{
		SessionID:        sessionKey,
		Stage:            conv.Stage,
		InteractionCount: conv.InteractionCount,
		Idea:             conv.Idea,
	}
	for _, m := range messages {
		state.Messages = append(state.Messages, dialog.Message{
			Role:        m.Role,
			Content:     m.Content,
			Timestamp:   m.CreatedAt,
			Suggestions: m.Suggestions,
			Persona:     m.Persona,
			Provider:    m.Provider,
		})
	}

	s.cache.Save(state)
	return state, conv, nil
}

// persistTurn writes the turn's new messages and the updated
// conversation row in one transaction, then refreshes the cache.
func (s *chatService) persistTurn(ctx context.Context, conv *entity.Conversation, state *dialog.State, newMessages []dialog.Message, userMessage string) error {
	conv.Stage = state.Stage
	conv.InteractionCount = state.InteractionCount
	conv.Idea = state.Idea
	if conv.Title == defaultConversationTitle {
		conv.Title = titleFromMessage(userMessage)
	}

	rows := make([]*entity.ConversationMessage, len(newMessages))
	for i, m := range newMessages {
		rows[i] = &entity.ConversationMessage{
			ConversationId: conv.Id,
			Role:           m.Role,
			Content:        m.Content,
			Persona:        m.Persona,
			Provider:       m.Provider,
			Suggestions:    m.Suggestions,
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ConversationMessageRepository().CreateBatch(ctx, rows); err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	if err := uow.ConversationRepository().Update(ctx, conv); err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.cache.Save(state)
	return nil
}

func (s *chatService) publishEvent(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("ChatService", "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

// titleFromMessage takes the first five words, the same heuristic the
// conversation list uses everywhere.
func titleFromMessage(message string) string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return defaultConversationTitle
	}
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " ")
}

func resolvePersonas(ids []string) []persona.Persona {
	if len(ids) == 0 {
		return persona.KeyPersonas()
	}
	out := make([]persona.Persona, 0, len(ids))
	for _, id := range ids {
		if p, ok := persona.Get(id); ok {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return persona.KeyPersonas()
	}
	return out
}

func conversationToResponse(conv *entity.Conversation, messages []*entity.ConversationMessage) *dto.ConversationResponse {
	resp := &dto.ConversationResponse{
		SessionKey:       conv.SessionKey,
		Title:            conv.Title,
		Stage:            string(conv.Stage),
		InteractionCount: conv.InteractionCount,
		Idea:             conv.Idea,
		CreatedAt:        conv.CreatedAt,
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, dto.MessageResponse{
			Role:        m.Role,
			Content:     m.Content,
			Persona:     m.Persona,
			Provider:    m.Provider,
			Suggestions: m.Suggestions,
			CreatedAt:   m.CreatedAt,
		})
	}
	return resp
}
