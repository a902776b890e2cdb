package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/repository"
	"bistro_backend/internal/utils"
)

const testJWTSecret = "test-secret"

// In-memory mock repositories. They mirror the store's observable
// behaviour: FindByEmail/GetByID return mongo.ErrNoDocuments when absent,
// UpdateFields writes only the whitelisted fields, and the category
// breakdown drops purchased ids with no matching menu document.

type mockUserRepo struct {
	users []domain.User
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepo) Insert(ctx context.Context, user *domain.User) (*repository.InsertResult, error) {
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return &repository.InsertResult{InsertedID: user.ID}, nil
}

func (m *mockUserRepo) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*repository.UpdateResult, error) {
	res := &repository.UpdateResult{}
	for i := range m.users {
		if m.users[i].ID == id {
			res.MatchedCount = 1
			if m.users[i].Role != role {
				m.users[i].Role = role
				res.ModifiedCount = 1
			}
		}
	}
	return res, nil
}

func (m *mockUserRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	res := &repository.DeleteResult{}
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res, nil
}

func (m *mockUserRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type mockMenuRepo struct {
	items []domain.MenuItem
}

func (m *mockMenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	return m.items, nil
}

func (m *mockMenuRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockMenuRepo) Insert(ctx context.Context, item *domain.MenuItem) (*repository.InsertResult, error) {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return &repository.InsertResult{InsertedID: item.ID}, nil
}

func (m *mockMenuRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, item *domain.MenuItem) (*repository.UpdateResult, error) {
	res := &repository.UpdateResult{}
	for i := range m.items {
		if m.items[i].ID == id {
			res.MatchedCount = 1
			res.ModifiedCount = 1
			m.items[i].Name = item.Name
			m.items[i].Category = item.Category
			m.items[i].Recipe = item.Recipe
			m.items[i].Price = item.Price
			m.items[i].Image = item.Image
		}
	}
	return res, nil
}

func (m *mockMenuRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	res := &repository.DeleteResult{}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res, nil
}

func (m *mockMenuRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

type mockReviewRepo struct {
	reviews []domain.Review
}

func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return m.reviews, nil
}

type mockCartRepo struct {
	items []domain.CartItem
}

func (m *mockCartRepo) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	result := []domain.CartItem{}
	for _, item := range m.items {
		if item.Email == email {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockCartRepo) Insert(ctx context.Context, item *domain.CartItem) (*repository.InsertResult, error) {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return &repository.InsertResult{InsertedID: item.ID}, nil
}

func (m *mockCartRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*repository.DeleteResult, error) {
	return m.DeleteMany(ctx, []primitive.ObjectID{id})
}

func (m *mockCartRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (*repository.DeleteResult, error) {
	res := &repository.DeleteResult{}
	remaining := m.items[:0:0]
	for _, item := range m.items {
		matched := false
		for _, id := range ids {
			if item.ID == id {
				matched = true
				break
			}
		}
		if matched {
			res.DeletedCount++
		} else {
			remaining = append(remaining, item)
		}
	}
	m.items = remaining
	return res, nil
}

type mockPaymentRepo struct {
	payments []domain.Payment
	menu     *mockMenuRepo // joined against for the category breakdown
}

func (m *mockPaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	return m.payments, nil
}

func (m *mockPaymentRepo) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	result := []domain.Payment{}
	for _, p := range m.payments {
		if p.Email == email {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPaymentRepo) Insert(ctx context.Context, payment *domain.Payment) (*repository.InsertResult, error) {
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *payment)
	return &repository.InsertResult{InsertedID: payment.ID}, nil
}

func (m *mockPaymentRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(m.payments)), nil
}

func (m *mockPaymentRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range m.payments {
		total += p.Price
	}
	return total, nil
}

func (m *mockPaymentRepo) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	byCategory := map[string]*domain.CategoryStat{}
	for _, p := range m.payments {
		for _, menuID := range p.MenuItemIDs {
			item, err := m.menu.GetByID(ctx, menuID)
			if err != nil {
				continue // no matching menu document, dropped
			}
			stat, ok := byCategory[item.Category]
			if !ok {
				stat = &domain.CategoryStat{Category: item.Category}
				byCategory[item.Category] = stat
			}
			stat.Quantity++
			stat.Revenue += item.Price
		}
	}
	stats := []domain.CategoryStat{}
	for _, stat := range byCategory {
		stats = append(stats, *stat)
	}
	return stats, nil
}

type mockIntentCreator struct {
	lastAmount int64
	secret     string
	err        error
}

func (m *mockIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	m.lastAmount = amountMinorUnits
	if m.err != nil {
		return "", m.err
	}
	return m.secret, nil
}

// newTestDeps returns Deps wired to fresh in-memory mocks
func newTestDeps() (Deps, *mockUserRepo, *mockMenuRepo, *mockCartRepo, *mockPaymentRepo, *mockIntentCreator) {
	users := &mockUserRepo{}
	menu := &mockMenuRepo{}
	carts := &mockCartRepo{}
	paymentRepo := &mockPaymentRepo{menu: menu}
	intents := &mockIntentCreator{secret: "pi_test_secret"}
	deps := Deps{
		Users:     users,
		Menu:      menu,
		Reviews:   &mockReviewRepo{},
		Carts:     carts,
		Payments:  paymentRepo,
		Intents:   intents,
		JWTSecret: testJWTSecret,
	}
	return deps, users, menu, carts, paymentRepo, intents
}

func newTestRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, deps)
	return r
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, testJWTSecret)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
