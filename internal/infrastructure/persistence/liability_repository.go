package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/finsight/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLiabilityRepository implements LiabilityRepository using GORM
type GormLiabilityRepository struct {
	db *gorm.DB
}

// NewGormLiabilityRepository creates a new GormLiabilityRepository
func NewGormLiabilityRepository(db *gorm.DB) *GormLiabilityRepository {
	return &GormLiabilityRepository{db: db}
}

var _ finance.LiabilityRepository = (*GormLiabilityRepository)(nil)

// FindByID finds a liability by its ID
func (r *GormLiabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Liability, error) {
	var model models.LiabilityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForOwner finds a liability by ID belonging to the given owner
func (r *GormLiabilityRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Liability, error) {
	var model models.LiabilityModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOwner finds the owner's liabilities matching the filter, with the total count
func (r *GormLiabilityRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Liability, int64, error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.LiabilityModel{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.LiabilityModel{}).Where("owner_id = ?", ownerID),
		filter,
	)

	var liabilityModels []models.LiabilityModel
	if err := query.Find(&liabilityModels).Error; err != nil {
		return nil, 0, err
	}

	liabilities := make([]finance.Liability, len(liabilityModels))
	for i, model := range liabilityModels {
		liabilities[i] = *model.ToDomain()
	}
	return liabilities, total, nil
}

// AllForOwner returns every liability belonging to the given owner
func (r *GormLiabilityRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.Liability, error) {
	var liabilityModels []models.LiabilityModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&liabilityModels).Error; err != nil {
		return nil, err
	}

	liabilities := make([]finance.Liability, len(liabilityModels))
	for i, model := range liabilityModels {
		liabilities[i] = *model.ToDomain()
	}
	return liabilities, nil
}

// Save creates or updates a liability
func (r *GormLiabilityRepository) Save(ctx context.Context, liability *finance.Liability) error {
	model := models.LiabilityModelFromDomain(liability)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a liability belonging to the given owner
func (r *GormLiabilityRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LiabilityModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filtering, pagination and ordering to the query
func (r *GormLiabilityRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies search and field filters only
func (r *GormLiabilityRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR notes ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		}
	}

	return query
}
