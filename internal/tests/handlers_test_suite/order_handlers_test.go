package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	api "github.com/gittydia/IMS-BAO/internal/http"
	handler "github.com/gittydia/IMS-BAO/internal/http/handlers"
	"github.com/gittydia/IMS-BAO/internal/models"
)

func orderFixtureProduct(r http.Handler, quantity int) handler.ProductResponse {
	return mustCreateProduct(r, handler.ProductRequest{
		Name:     fmt.Sprintf("Fixture Product %d", time.Now().UnixNano()),
		Category: "Book",
		Price:    decimal.NewFromInt(500),
		Quantity: quantity,
	})
}

func TestCreateOrderHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 5)
	w := createOrder(r, adminToken, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(48 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if order.ProductID != product.Id {
		t.Errorf("expected product id %d, got %d", product.Id, order.ProductID)
	}
	if order.Status != "pending" {
		t.Errorf("expected status pending, got %v", order.Status)
	}
	if order.DateClaimed != nil {
		t.Errorf("expected no claim timestamp on a new order, got %v", order.DateClaimed)
	}

	// Placing an order never touches stock.
	after, _ := getProduct(r, product.Id)
	if after.Quantity != 5 {
		t.Errorf("expected quantity unchanged at 5, got %d", after.Quantity)
	}
}

func TestCreateOrderHandler_StudentOrderRecordsTransaction(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 5)
	w := createOrder(r, studentToken, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(48 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if order.Txn == nil {
		t.Fatal("expected a transaction linking the order to the student")
	}
	if order.Student == nil {
		t.Error("expected the ordering student to be included")
	}
}

func TestCreateOrderHandler_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	w := createOrder(r, adminToken, handler.OrderCreateRequest{
		ProductID:   999999,
		DateToClaim: time.Now().Add(48 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	r := api.NewRouter()

	w := createOrder(r, adminToken, handler.OrderCreateRequest{Status: "lost"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ProductValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	for _, field := range []string{"product_id", "date_to_claim", "status", "amount"} {
		found := false
		for _, err := range resp {
			if err.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected error for field %q, but not found", field)
		}
	}
}

func TestUpdateOrderHandler_ClaimReservesStock(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 3)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "ready",
		Amount:      decimal.NewFromInt(500),
	})

	w := updateOrder(r, order.ID, map[string]any{"status": "claimed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Order
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Status != "claimed" {
		t.Errorf("expected status claimed, got %v", updated.Status)
	}

	after, _ := getProduct(r, product.Id)
	if after.Quantity != 2 {
		t.Errorf("expected quantity 2 after claim, got %d", after.Quantity)
	}
}

func TestUpdateOrderHandler_ClaimOutOfStock(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 0)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "ready",
		Amount:      decimal.NewFromInt(500),
	})

	w := updateOrder(r, order.ID, map[string]any{"status": "claimed"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// The failed claim leaves the order as it was.
	got := doRequest(r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), adminToken, nil)
	var unchanged models.Order
	json.NewDecoder(got.Body).Decode(&unchanged)
	if unchanged.Status != "ready" {
		t.Errorf("expected status still ready, got %v", unchanged.Status)
	}
}

func TestUpdateOrderHandler_CancelAfterClaimRestoresStock(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 1)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	if w := updateOrder(r, order.ID, map[string]any{"status": "claimed"}); w.Code != http.StatusOK {
		t.Fatalf("claim failed with %d: %s", w.Code, w.Body.String())
	}
	after, _ := getProduct(r, product.Id)
	if after.Quantity != 0 {
		t.Fatalf("expected quantity 0 after claim, got %d", after.Quantity)
	}

	if w := updateOrder(r, order.ID, map[string]any{"status": "cancelled"}); w.Code != http.StatusOK {
		t.Fatalf("cancel failed with %d: %s", w.Code, w.Body.String())
	}
	after, _ = getProduct(r, product.Id)
	if after.Quantity != 1 {
		t.Errorf("expected quantity restored to 1, got %d", after.Quantity)
	}
}

func TestUpdateOrderHandler_StatusCaseInsensitive(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 2)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	w := updateOrder(r, order.ID, map[string]any{"status": "Claimed"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated models.Order
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Status != "claimed" {
		t.Errorf("expected canonical lowercase status, got %v", updated.Status)
	}
}

func TestUpdateOrderHandler_UnknownStatus(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 2)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	w := updateOrder(r, order.ID, map[string]any{"status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestUpdateOrderHandler_DateClaimedSetAndCleared(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 2)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	claimedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	w := updateOrder(r, order.ID, map[string]any{
		"status":       "claimed",
		"date_claimed": claimedAt.Format(time.RFC3339),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Order
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.DateClaimed == nil || !updated.DateClaimed.Equal(claimedAt) {
		t.Fatalf("expected date_claimed %v, got %v", claimedAt, updated.DateClaimed)
	}

	// Explicit null clears the timestamp; an absent field would leave it.
	w = updateOrder(r, order.ID, map[string]any{
		"status":       "cancelled",
		"date_claimed": nil,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.DateClaimed != nil {
		t.Errorf("expected date_claimed cleared, got %v", updated.DateClaimed)
	}
}

func TestUpdateOrderHandler_NotFound(t *testing.T) {
	r := api.NewRouter()

	w := updateOrder(r, 999999, map[string]any{"status": "ready"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteOrderHandler_NoStockReversal(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 1)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "pending",
		Amount:      decimal.NewFromInt(500),
	})

	if w := updateOrder(r, order.ID, map[string]any{"status": "claimed"}); w.Code != http.StatusOK {
		t.Fatalf("claim failed with %d", w.Code)
	}

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID), adminToken, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// Deleting a claimed order is not a cancellation.
	after, _ := getProduct(r, product.Id)
	if after.Quantity != 0 {
		t.Errorf("expected quantity to stay 0 after delete, got %d", after.Quantity)
	}

	got := doRequest(r, http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), adminToken, nil)
	if got.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", got.Code)
	}
}

func TestUpdateOrderHandler_ClaimWritesAuditEntry(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllOrders)
	t.Cleanup(activityRepo.Clear)
	r := api.NewRouter()

	product := orderFixtureProduct(r, 2)
	order := mustCreateOrder(r, handler.OrderCreateRequest{
		ProductID:   product.Id,
		DateToClaim: time.Now().Add(24 * time.Hour),
		Status:      "ready",
		Amount:      decimal.NewFromInt(500),
	})

	if w := updateOrder(r, order.ID, map[string]any{"status": "claimed"}); w.Code != http.StatusOK {
		t.Fatalf("claim failed with %d", w.Code)
	}

	w := doRequest(r, http.MethodGet, "/activity?limit=10", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK from activity feed, got %d", w.Code)
	}

	var entries []models.Activity
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding activity feed: %v", err)
	}

	found := false
	for _, e := range entries {
		if e.EntityType == "order" && e.EntityID == order.ID &&
			strings.Contains(e.Description, "ready -> claimed") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected an audit entry for the claim, got %+v", entries)
	}
}
