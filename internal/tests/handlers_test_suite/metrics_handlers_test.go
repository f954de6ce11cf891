package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	api "github.com/gittydia/IMS-BAO/internal/http"
	handler "github.com/gittydia/IMS-BAO/internal/http/handlers"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
)

func TestGetMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		Name: "Metrics In Stock", Category: "Book",
		Price: decimal.NewFromInt(100), Quantity: 50,
	})
	low := mustCreateProduct(r, handler.ProductRequest{
		Name: "Metrics Low", Category: "Book",
		Price: decimal.NewFromInt(100), Quantity: 3,
	})
	mustCreateProduct(r, handler.ProductRequest{
		Name: "Metrics Empty", Category: "Book",
		Price: decimal.NewFromInt(100), Quantity: 0,
	})

	mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   low.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(100),
	})
	mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   low.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "ready",
		Amount:      decimal.NewFromInt(100),
	})

	w := doRequest(r, http.MethodGet, "/metrics", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if m.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", m.TotalProducts)
	}
	if m.LowStockCount != 1 {
		t.Errorf("expected 1 low stock product, got %d", m.LowStockCount)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out of stock product, got %d", m.OutOfStockCount)
	}
	if m.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", m.TotalOrders)
	}
	if m.OrdersByStatus["pending"] != 1 || m.OrdersByStatus["ready"] != 1 {
		t.Errorf("unexpected status breakdown: %v", m.OrdersByStatus)
	}
}

func TestGetMetricsHandler_RequiresAdmin(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/metrics", studentToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for student, got %d", w.Code)
	}
}

func TestGetActivityHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(activityRepo.Clear)
	activityRepo.Clear()
	r := api.NewRouter()

	first := mustCreateProduct(r, handler.ProductRequest{
		Name: "Audited One", Category: "Book",
		Price: decimal.NewFromInt(100), Quantity: 5,
	})
	second := mustCreateProduct(r, handler.ProductRequest{
		Name: "Audited Two", Category: "Book",
		Price: decimal.NewFromInt(100), Quantity: 5,
	})

	w := doRequest(r, http.MethodGet, "/activity", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entries []models.Activity
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Most recent first.
	if entries[0].EntityID != second.Id || entries[1].EntityID != first.Id {
		t.Errorf("expected newest entry first, got %+v", entries)
	}
	if entries[0].Action != "create" || entries[0].EntityType != "product" {
		t.Errorf("unexpected entry shape: %+v", entries[0])
	}
}

func TestGetActivityHandler_LimitParam(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(activityRepo.Clear)
	r := api.NewRouter()

	for i := 0; i < 3; i++ {
		mustCreateProduct(r, handler.ProductRequest{
			Name: "Limit Fixture", Category: "Book",
			Price: decimal.NewFromInt(100), Quantity: 5,
		})
	}

	w := doRequest(r, http.MethodGet, "/activity?limit=2", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entries []models.Activity
	json.NewDecoder(w.Body).Decode(&entries)
	if len(entries) != 2 {
		t.Errorf("expected 2 entries with limit=2, got %d", len(entries))
	}
}

func TestGetActivityHandler_RequiresAdmin(t *testing.T) {
	r := api.NewRouter()

	w := doRequest(r, http.MethodGet, "/activity", studentToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 Forbidden for student, got %d", w.Code)
	}
}
