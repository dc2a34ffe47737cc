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

// GormCreditCardRepository implements CreditCardRepository using GORM
type GormCreditCardRepository struct {
	db *gorm.DB
}

// NewGormCreditCardRepository creates a new GormCreditCardRepository
func NewGormCreditCardRepository(db *gorm.DB) *GormCreditCardRepository {
	return &GormCreditCardRepository{db: db}
}

var _ finance.CreditCardRepository = (*GormCreditCardRepository)(nil)

// FindByID finds a credit card account by its ID
func (r *GormCreditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CreditCardAccount, error) {
	var model models.CreditCardAccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForOwner finds a credit card account by ID belonging to the given owner
func (r *GormCreditCardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.CreditCardAccount, error) {
	var model models.CreditCardAccountModel
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

// FindAllForOwner finds the owner's credit card accounts matching the filter, with the total count
func (r *GormCreditCardRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.CreditCardAccount, int64, error) {
	var total int64
	countQuery := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.CreditCardAccountModel{}).Where("owner_id = ?", ownerID),
		filter,
	)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CreditCardAccountModel{}).Where("owner_id = ?", ownerID),
		filter,
	)

	var cardModels []models.CreditCardAccountModel
	if err := query.Find(&cardModels).Error; err != nil {
		return nil, 0, err
	}

	cards := make([]finance.CreditCardAccount, len(cardModels))
	for i, model := range cardModels {
		cards[i] = *model.ToDomain()
	}
	return cards, total, nil
}

// AllForOwner returns every credit card account belonging to the given owner
func (r *GormCreditCardRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.CreditCardAccount, error) {
	var cardModels []models.CreditCardAccountModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&cardModels).Error; err != nil {
		return nil, err
	}

	cards := make([]finance.CreditCardAccount, len(cardModels))
	for i, model := range cardModels {
		cards[i] = *model.ToDomain()
	}
	return cards, nil
}

// Save creates or updates a credit card account
func (r *GormCreditCardRepository) Save(ctx context.Context, card *finance.CreditCardAccount) error {
	model := models.CreditCardAccountModelFromDomain(card)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a credit card account belonging to the given owner
func (r *GormCreditCardRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CreditCardAccountModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filtering, pagination and ordering to the query
func (r *GormCreditCardRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormCreditCardRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR issuer ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "issuer":
			query = query.Where("issuer = ?", value)
		}
	}

	return query
}
