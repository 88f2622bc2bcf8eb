package implementation

import (
	"context"
	"errors"

	"idea-copilot-be/internal/entity"
	"idea-copilot-be/internal/mapper"
	"idea-copilot-be/internal/model"
	"idea-copilot-be/internal/repository/contract"
	"idea-copilot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeedRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SeedMapper
}

func NewSeedRepository(db *gorm.DB) contract.SeedRepository {
	return &SeedRepositoryImpl{
		db:     db,
		mapper: mapper.NewSeedMapper(),
	}
}

func (r *SeedRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SeedRepositoryImpl) Create(ctx context.Context, seed *entity.Seed) error {
	m := r.mapper.ToModel(seed)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*seed = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeedRepositoryImpl) Update(ctx context.Context, seed *entity.Seed) error {
	m := r.mapper.ToModel(seed)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*seed = *r.mapper.ToEntity(m)
	return nil
}

func (r *SeedRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Seed{}, id).Error
}

func (r *SeedRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Seed, error) {
	var m model.Seed
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SeedRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Seed, error) {
	var models []*model.Seed
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SeedRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Seed{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
