package service

import (
	"context"
	"fmt"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
)

type IMappingService interface {
	MindMap(ctx context.Context, sessionKey string) (*dto.MindMapResponse, error)
}

// mappingService renders the structured idea as a node/edge graph for
// frontend visualization. The graph is derived on request, never
// stored.
type mappingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMappingService(uowFactory unitofwork.RepositoryFactory) IMappingService {
	return &mappingService{uowFactory: uowFactory}
}

var nodeColors = map[string]string{
	"idea":        "#4A90D9",
	"problem":     "#E74C3C",
	"audience":    "#F39C12",
	"solution":    "#27AE60",
	"impact":      "#9B59B6",
	"constraint":  "#95A5A6",
	"alternative": "#16A085",
}

func (s *mappingService) MindMap(ctx context.Context, sessionKey string) (*dto.MindMapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	return BuildMindMap(conv), nil
}

// BuildMindMap turns a conversation's structured idea into a graph
// centered on the idea node.
func BuildMindMap(conv *entity.Conversation) *dto.MindMapResponse {
	resp := &dto.MindMapResponse{
		SessionKey: conv.SessionKey,
		Nodes:      []dto.MindMapNode{},
		Edges:      []dto.MindMapEdge{},
	}

	center := "idea"
	resp.Nodes = append(resp.Nodes, dto.MindMapNode{
		ID:    center,
		Label: conv.Title,
		Type:  "idea",
		Color: nodeColors["idea"],
	})

	addLeaf := func(id, label, nodeType string) {
		if label == "" {
			return
		}
		resp.Nodes = append(resp.Nodes, dto.MindMapNode{
			ID:    id,
			Label: label,
			Type:  nodeType,
			Color: nodeColors[nodeType],
		})
		resp.Edges = append(resp.Edges, dto.MindMapEdge{From: center, To: id, Type: nodeType})
	}

	addLeaf("problem", conv.Idea.Problem, "problem")
	addLeaf("audience", conv.Idea.Audience, "audience")
	addLeaf("solution", conv.Idea.Solution, "solution")
	addLeaf("impact", conv.Idea.Impact, "impact")

	for i, c := range conv.Idea.Constraints {
		addLeaf(fmt.Sprintf("constraint-%d", i+1), c, "constraint")
	}
	for i, a := range conv.Idea.Alternatives {
		addLeaf(fmt.Sprintf("alternative-%d", i+1), a, "alternative")
	}

	return resp
}
