package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/mapper"
	"idea-shaper-be/internal/model"
	"idea-shaper-be/internal/repository/contract"
	"idea-shaper-be/internal/repository/specification"
)

type ProposalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewProposalRepository(db *gorm.DB) contract.ProposalRepository {
	return &ProposalRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ProposalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProposalRepositoryImpl) Create(ctx context.Context, proposal *entity.Proposal) error {
	m := r.mapper.ProposalToModel(proposal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*proposal = *r.mapper.ProposalToEntity(m)
	return nil
}

func (r *ProposalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Proposal, error) {
	var m model.Proposal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProposalToEntity(&m), nil
}

func (r *ProposalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Proposal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProposalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Proposal, error) {
	var models []*model.Proposal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Proposal, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProposalToEntity(m)
	}
	return entities, nil
}
