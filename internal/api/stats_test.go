package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro_backend/internal/domain"
)

func TestAdminStatusWithNoPayments(t *testing.T) {
	deps, users, menu, _, _, _ := newTestDeps()
	users.users = []domain.User{{Email: "admin@example.com", Role: domain.RoleAdmin}}
	menu.items = []domain.MenuItem{{Name: "Soup", Category: "soup", Price: 5}}
	r := newTestRouter(deps)

	w := doRequest(r, http.MethodGet, "/admin-status", tokenFor(t, "admin@example.com"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /admin-status = %d, want 200", w.Code)
	}
	var stats domain.AdminStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if stats.Users != 1 || stats.MenuItems != 1 || stats.Orders != 0 {
		t.Errorf("stats = %+v, want users=1 menuItems=1 orders=0", stats)
	}
	if stats.Revenue != 0 {
		t.Errorf("revenue with no payments = %v, want 0", stats.Revenue)
	}
}

func TestAdminStatusRevenue(t *testing.T) {
	deps, users, _, _, paymentRepo, _ := newTestDeps()
	users.users = []domain.User{{Email: "admin@example.com", Role: domain.RoleAdmin}}
	paymentRepo.payments = []domain.Payment{
		{Email: "a@example.com", Price: 12.5},
		{Email: "b@example.com", Price: 7.5},
	}
	r := newTestRouter(deps)

	w := doRequest(r, http.MethodGet, "/admin-status", tokenFor(t, "admin@example.com"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /admin-status = %d, want 200", w.Code)
	}
	var stats domain.AdminStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if stats.Orders != 2 || stats.Revenue != 20 {
		t.Errorf("stats = %+v, want orders=2 revenue=20", stats)
	}
}

func TestOrderStatusCategoryBreakdown(t *testing.T) {
	deps, users, menu, _, paymentRepo, _ := newTestDeps()
	users.users = []domain.User{{Email: "admin@example.com", Role: domain.RoleAdmin}}

	drinkID := primitive.NewObjectID()
	mainID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()
	menu.items = []domain.MenuItem{
		{ID: drinkID, Name: "Lemonade", Category: "Drinks", Price: 5},
		{ID: mainID, Name: "Steak", Category: "Mains", Price: 20},
	}
	// One payment purchasing [drink, drink, main] plus one id with no
	// matching menu record, which must contribute nothing
	paymentRepo.payments = []domain.Payment{{
		Email:       "user@example.com",
		Price:       30,
		MenuItemIDs: []primitive.ObjectID{drinkID, drinkID, mainID, missingID},
	}}
	r := newTestRouter(deps)

	w := doRequest(r, http.MethodGet, "/order-status", tokenFor(t, "admin@example.com"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /order-status = %d, want 200", w.Code)
	}
	var stats []domain.CategoryStat
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("breakdown rows = %d, want 2 (%+v)", len(stats), stats)
	}
	byCategory := map[string]domain.CategoryStat{}
	for _, s := range stats {
		byCategory[s.Category] = s
	}
	if s := byCategory["Drinks"]; s.Quantity != 2 || s.Revenue != 10 {
		t.Errorf("Drinks = %+v, want quantity=2 revenue=10", s)
	}
	if s := byCategory["Mains"]; s.Quantity != 1 || s.Revenue != 20 {
		t.Errorf("Mains = %+v, want quantity=1 revenue=20", s)
	}
}

func TestOrderStatusEmpty(t *testing.T) {
	deps, users, _, _, _, _ := newTestDeps()
	users.users = []domain.User{{Email: "admin@example.com", Role: domain.RoleAdmin}}
	r := newTestRouter(deps)

	w := doRequest(r, http.MethodGet, "/order-status", tokenFor(t, "admin@example.com"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /order-status = %d, want 200", w.Code)
	}
	var stats []domain.CategoryStat
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("breakdown with no payments = %+v, want empty", stats)
	}
}
