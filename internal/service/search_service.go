package service

import (
	"context"
	"sort"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
)

const (
	titleRelevance   = 0.9
	contentRelevance = 0.7
	snippetLength    = 120
)

type ISearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

// searchService runs case-insensitive substring search across
// conversation titles and message bodies. A title hit outranks a
// content hit for the same conversation.
type searchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory) ISearchService {
	return &searchService{uowFactory: uowFactory}
}

func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	resp := &dto.SearchResponse{Query: query, Results: []dto.SearchResult{}}
	if query == "" {
		return resp, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	byKey := make(map[string]dto.SearchResult)

	titleHits, err := uow.ConversationRepository().FindAll(ctx, specification.TitleLike{Query: query})
	if err != nil {
		return nil, err
	}
	for _, c := range titleHits {
		byKey[c.SessionKey] = dto.SearchResult{
			SessionKey: c.SessionKey,
			Title:      c.Title,
			Snippet:    c.Title,
			MatchType:  "title",
			Relevance:  titleRelevance,
		}
	}

	contentHits, err := uow.ConversationMessageRepository().FindAll(ctx, specification.ContentLike{Query: query})
	if err != nil {
		return nil, err
	}
	for _, m := range contentHits {
		conv, err := uow.ConversationRepository().FindOne(ctx, specification.ByID{ID: m.ConversationId})
		if err != nil {
			return nil, err
		}
		if conv == nil {
			continue
		}
		if existing, ok := byKey[conv.SessionKey]; ok && existing.Relevance >= contentRelevance {
			continue
		}
		byKey[conv.SessionKey] = dto.SearchResult{
			SessionKey: conv.SessionKey,
			Title:      conv.Title,
			Snippet:    snippet(m.Content),
			MatchType:  "content",
			Relevance:  contentRelevance,
		}
	}

	for _, r := range byKey {
		resp.Results = append(resp.Results, r)
	}
	sort.Slice(resp.Results, func(i, j int) bool {
		if resp.Results[i].Relevance != resp.Results[j].Relevance {
			return resp.Results[i].Relevance > resp.Results[j].Relevance
		}
		return resp.Results[i].SessionKey < resp.Results[j].SessionKey
	})

	return resp, nil
}

func snippet(content string) string {
	if len(content) <= snippetLength {
		return content
	}
	return content[:snippetLength] + "..."
}
