package handler

import (
	"context"

	"github.com/finsight/backend/internal/domain/finance"
	"github.com/finsight/backend/internal/domain/identity"
	"github.com/finsight/backend/internal/domain/shared"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// In-memory repository fakes shared by the handler tests.

// setJWTContext simulates an authenticated request by setting the JWT
// user ID the middleware would have stored in the context.
func setJWTContext(c *gin.Context, userID uuid.UUID) {
	c.Set(middleware.JWTUserIDKey, userID.String())
}

type mockAssetRepository struct {
	assets    map[uuid.UUID]*finance.Asset
	returnErr error
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{assets: make(map[uuid.UUID]*finance.Asset)}
}

func (m *mockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Asset, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if a, ok := m.assets[id]; ok {
		return a, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockAssetRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Asset, error) {
	if m.returnErr != nil {
		return nil, m.returnErr
	}
	if a, ok := m.assets[id]; ok && a.OwnerID == ownerID {
		return a, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockAssetRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Asset, int64, error) {
	if m.returnErr != nil {
		return nil, 0, m.returnErr
	}
	var result []finance.Asset
	for _, a := range m.assets {
		if a.OwnerID == ownerID {
			result = append(result, *a)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockAssetRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.Asset, error) {
	items, _, err := m.FindAllForOwner(ctx, ownerID, shared.DefaultFilter())
	return items, err
}

func (m *mockAssetRepository) Save(ctx context.Context, asset *finance.Asset) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	m.assets[asset.ID] = asset
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.returnErr != nil {
		return m.returnErr
	}
	if a, ok := m.assets[id]; ok && a.OwnerID == ownerID {
		delete(m.assets, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockIncomeRepository struct {
	records map[uuid.UUID]*finance.IncomeRecord
}

func newMockIncomeRepository() *mockIncomeRepository {
	return &mockIncomeRepository{records: make(map[uuid.UUID]*finance.IncomeRecord)}
}

func (m *mockIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.IncomeRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockIncomeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.IncomeRecord, error) {
	if r, ok := m.records[id]; ok && r.OwnerID == ownerID {
		return r, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockIncomeRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.IncomeRecord, int64, error) {
	var result []finance.IncomeRecord
	for _, r := range m.records {
		if r.OwnerID == ownerID {
			result = append(result, *r)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockIncomeRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.IncomeRecord, error) {
	items, _, err := m.FindAllForOwner(ctx, ownerID, shared.DefaultFilter())
	return items, err
}

func (m *mockIncomeRepository) Save(ctx context.Context, record *finance.IncomeRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockIncomeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if r, ok := m.records[id]; ok && r.OwnerID == ownerID {
		delete(m.records, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockLiabilityRepository struct {
	liabilities map[uuid.UUID]*finance.Liability
}

func newMockLiabilityRepository() *mockLiabilityRepository {
	return &mockLiabilityRepository{liabilities: make(map[uuid.UUID]*finance.Liability)}
}

func (m *mockLiabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Liability, error) {
	if l, ok := m.liabilities[id]; ok {
		return l, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockLiabilityRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Liability, error) {
	if l, ok := m.liabilities[id]; ok && l.OwnerID == ownerID {
		return l, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockLiabilityRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Liability, int64, error) {
	var result []finance.Liability
	for _, l := range m.liabilities {
		if l.OwnerID == ownerID {
			result = append(result, *l)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockLiabilityRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.Liability, error) {
	items, _, err := m.FindAllForOwner(ctx, ownerID, shared.DefaultFilter())
	return items, err
}

func (m *mockLiabilityRepository) Save(ctx context.Context, liability *finance.Liability) error {
	m.liabilities[liability.ID] = liability
	return nil
}

func (m *mockLiabilityRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if l, ok := m.liabilities[id]; ok && l.OwnerID == ownerID {
		delete(m.liabilities, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockCreditCardRepository struct {
	cards map[uuid.UUID]*finance.CreditCardAccount
}

func newMockCreditCardRepository() *mockCreditCardRepository {
	return &mockCreditCardRepository{cards: make(map[uuid.UUID]*finance.CreditCardAccount)}
}

func (m *mockCreditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.CreditCardAccount, error) {
	if c, ok := m.cards[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockCreditCardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.CreditCardAccount, error) {
	if c, ok := m.cards[id]; ok && c.OwnerID == ownerID {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockCreditCardRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.CreditCardAccount, int64, error) {
	var result []finance.CreditCardAccount
	for _, c := range m.cards {
		if c.OwnerID == ownerID {
			result = append(result, *c)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockCreditCardRepository) AllForOwner(ctx context.Context, ownerID uuid.UUID) ([]finance.CreditCardAccount, error) {
	items, _, err := m.FindAllForOwner(ctx, ownerID, shared.DefaultFilter())
	return items, err
}

func (m *mockCreditCardRepository) Save(ctx context.Context, card *finance.CreditCardAccount) error {
	m.cards[card.ID] = card
	return nil
}

func (m *mockCreditCardRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if c, ok := m.cards[id]; ok && c.OwnerID == ownerID {
		delete(m.cards, id)
		return nil
	}
	return shared.ErrNotFound
}

type mockUserRepository struct {
	users map[uuid.UUID]*identity.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uuid.UUID]*identity.User)}
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) Save(ctx context.Context, user *identity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.users, id)
	return nil
}
