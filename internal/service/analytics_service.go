package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
	"idea-shaper-be/pkg/dialog"
)

type IAnalyticsService interface {
	UsageRecorder
	ConversationStats(ctx context.Context, sessionKey string) (*dto.ConversationStats, error)
	UsageStats(ctx context.Context) (*dto.UsageStats, error)
}

// analyticsService keeps call counters in Redis and derives
// conversation stats from storage. With Redis absent, counters are
// silently dropped and stats come back empty.
type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		rdb:        rdb,
		logger:     log,
	}
}

func (s *analyticsService) RecordProviderCall(ctx context.Context, provider string) {
	s.incr(ctx, fmt.Sprintf("usage:provider:%s", provider))
}

func (s *analyticsService) RecordPersonaCall(ctx context.Context, personaID string) {
	s.incr(ctx, fmt.Sprintf("usage:persona:%s", personaID))
}

func (s *analyticsService) incr(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, key).Err(); err != nil {
		s.logger.Warn("AnalyticsService", "Counter increment failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (s *analyticsService) ConversationStats(ctx context.Context, sessionKey string) (*dto.ConversationStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionKey{SessionKey: sessionKey})
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	msgCount, err := uow.ConversationMessageRepository().Count(ctx, specification.ByConversationID{ConversationID: conv.Id})
	if err != nil {
		return nil, err
	}

	return &dto.ConversationStats{
		SessionKey:        sessionKey,
		Stage:             string(conv.Stage),
		CompletionPercent: CompletionPercent(conv.Stage),
		InteractionCount:  conv.InteractionCount,
		MessageCount:      msgCount,
	}, nil
}

func (s *analyticsService) UsageStats(ctx context.Context) (*dto.UsageStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalConvs, err := uow.ConversationRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProposals, err := uow.ProposalRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.UsageStats{
		TotalConversations: totalConvs,
		TotalProposals:     totalProposals,
		ProviderCalls:      map[string]int64{},
		PersonaCalls:       map[string]int64{},
	}

	if s.rdb != nil {
		stats.ProviderCalls = s.readCounters(ctx, "usage:provider:*")
		stats.PersonaCalls = s.readCounters(ctx, "usage:persona:*")
	}

	return stats, nil
}

func (s *analyticsService) readCounters(ctx context.Context, pattern string) map[string]int64 {
	out := map[string]int64{}
	keys, err := s.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		s.logger.Warn("AnalyticsService", "Counter scan failed", map[string]interface{}{"error": err.Error()})
		return out
	}
	for _, key := range keys {
		val, err := s.rdb.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		// Strip the "usage:provider:" / "usage:persona:" prefix
		name := key
		for i := len(key) - 1; i >= 0; i-- {
			if key[i] == ':' {
				name = key[i+1:]
				break
			}
		}
		out[name] = val
	}
	return out
}

// CompletionPercent maps a stage to how far through the progression a
// conversation is.
func CompletionPercent(stage dialog.Stage) float64 {
	return float64(stage.Index()) / float64(dialog.Count-1) * 100
}
