package fulfillment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/stock"
)

type fixture struct {
	products    *repo.InMemoryProductRepository
	orders      *repo.InMemoryOrderRepository
	activities  *repo.InMemoryActivityRepository
	coordinator *Coordinator
}

func newFixture() *fixture {
	products := repo.NewInMemoryProductRepository()
	orders := repo.NewInMemoryOrderRepository()
	orders.SetRepositories(products, nil, nil)
	activities := repo.NewInMemoryActivityRepository()

	store := repo.NewInMemoryFulfillmentStore(orders, products)
	trail := audit.NewRecorder(activities)

	return &fixture{
		products:    products,
		orders:      orders,
		activities:  activities,
		coordinator: NewCoordinator(store, trail),
	}
}

var testActor = audit.Actor{ID: 1, Email: "admin@example.com", Role: "admin"}

func (f *fixture) createProduct(t *testing.T, quantity int) models.Product {
	t.Helper()
	p, err := f.products.Create(models.Product{
		Name:     "Lab Manual",
		Category: "Book",
		Price:    decimal.NewFromInt(250),
		Quantity: quantity,
	})
	if err != nil {
		t.Fatalf("creating product: %v", err)
	}
	return p
}

func (f *fixture) createOrder(t *testing.T, productID int, status string) models.Order {
	t.Helper()
	o, err := f.orders.Create(models.Order{
		ProductID:   productID,
		DateToClaim: time.Now().Add(48 * time.Hour),
		Status:      status,
		Amount:      decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("creating order: %v", err)
	}
	return o
}

func (f *fixture) update(t *testing.T, orderID int, status string) (models.Order, error) {
	t.Helper()
	return f.coordinator.UpdateOrder(context.Background(), testActor, orderID, OrderPatch{Status: &status})
}

func TestUpdateOrder_ClaimDecrementsStock(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 11)
	o := f.createOrder(t, p.ID, StatusReady)

	updated, err := f.update(t, o.ID, "Claimed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusClaimed {
		t.Errorf("expected status %q, got %q", StatusClaimed, updated.Status)
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", got.Quantity)
	}
	if got.Status != stock.StatusLowStock {
		t.Errorf("expected derived status %q, got %q", stock.StatusLowStock, got.Status)
	}
}

func TestUpdateOrder_InsufficientStockLeavesEverythingUnchanged(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 0)
	o := f.createOrder(t, p.ID, StatusPending)

	_, err := f.update(t, o.ID, StatusClaimed)
	if !errors.Is(err, stock.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	gotOrder, _ := f.orders.GetByID(o.ID)
	if gotOrder.Status != StatusPending {
		t.Errorf("order status must be unchanged, got %q", gotOrder.Status)
	}
	gotProduct, _ := f.products.GetByID(p.ID)
	if gotProduct.Quantity != 0 || gotProduct.Status != stock.StatusOutOfStock {
		t.Errorf("product must be unchanged: quantity=%d status=%q", gotProduct.Quantity, gotProduct.Status)
	}
	if entries, _ := f.activities.Recent(10); len(entries) != 0 {
		t.Errorf("rejected update must not leave audit entries, got %d", len(entries))
	}
}

func TestUpdateOrder_CancelAfterClaimRestoresStock(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 5)
	o := f.createOrder(t, p.ID, StatusClaimed)

	updated, err := f.update(t, o.ID, StatusCancelled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusCancelled {
		t.Errorf("expected status %q, got %q", StatusCancelled, updated.Status)
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", got.Quantity)
	}
	if got.Status != stock.DeriveStatus(6) {
		t.Errorf("expected status %q, got %q", stock.DeriveStatus(6), got.Status)
	}
}

func TestUpdateOrder_ClaimedToClaimedIsNoOp(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 3)
	o := f.createOrder(t, p.ID, StatusClaimed)

	if _, err := f.update(t, o.ID, "CLAIMED"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 3 {
		t.Errorf("no-op must not touch stock, got quantity %d", got.Quantity)
	}
	if entries, _ := f.activities.Recent(10); len(entries) != 0 {
		t.Errorf("no-op must not produce audit entries, got %d", len(entries))
	}
}

func TestUpdateOrder_UnknownStatusRejected(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 3)
	o := f.createOrder(t, p.ID, StatusPending)

	if _, err := f.update(t, o.ID, "shipped"); err == nil {
		t.Fatal("expected rejection of unknown status")
	}
}

func TestUpdateOrder_OrderNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.update(t, 999, StatusClaimed)
	if !errors.Is(err, repo.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateOrder_MissingProductBlocksClaim(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 3)
	o := f.createOrder(t, p.ID, StatusPending)

	if err := f.products.Delete(p.ID); err != nil {
		t.Fatalf("deleting product: %v", err)
	}

	_, err := f.update(t, o.ID, StatusClaimed)
	if !errors.Is(err, repo.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateOrder_DateClaimedSetAndCleared(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 3)
	o := f.createOrder(t, p.ID, StatusReady)

	claimedAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	status := StatusClaimed
	updated, err := f.coordinator.UpdateOrder(context.Background(), testActor, o.ID, OrderPatch{
		Status:      &status,
		DateClaimed: &claimedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DateClaimed == nil || !updated.DateClaimed.Equal(claimedAt) {
		t.Errorf("expected date_claimed %v, got %v", claimedAt, updated.DateClaimed)
	}

	updated, err = f.coordinator.UpdateOrder(context.Background(), testActor, o.ID, OrderPatch{
		ClearDateClaimed: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DateClaimed != nil {
		t.Errorf("expected date_claimed cleared, got %v", updated.DateClaimed)
	}
	if updated.Status != StatusClaimed {
		t.Errorf("clearing the timestamp must not change status, got %q", updated.Status)
	}
}

func TestUpdateOrder_RoundTripNetZeroStock(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 8)
	o := f.createOrder(t, p.ID, StatusPending)

	for _, status := range []string{StatusReady, StatusClaimed, StatusCancelled} {
		if _, err := f.update(t, o.ID, status); err != nil {
			t.Fatalf("transition to %q: %v", status, err)
		}
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 8 {
		t.Errorf("expected net stock delta 0, got quantity %d", got.Quantity)
	}

	entries, _ := f.activities.Recent(10)
	if len(entries) != 3 {
		t.Fatalf("expected one entry per status change, got %d", len(entries))
	}
	increments := 0
	for _, e := range entries {
		if strings.Contains(e.Description, "stock +1") {
			increments++
		}
	}
	if increments != 1 {
		t.Errorf("expected exactly one increment-on-reversal entry, got %d", increments)
	}
}

func TestUpdateOrder_ConcurrentClaimsOnLastUnit(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 1)
	o1 := f.createOrder(t, p.ID, StatusPending)
	o2 := f.createOrder(t, p.ID, StatusPending)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []int{o1.ID, o2.ID} {
		wg.Add(1)
		go func(i, orderID int) {
			defer wg.Done()
			status := StatusClaimed
			_, errs[i] = f.coordinator.UpdateOrder(context.Background(), testActor, orderID, OrderPatch{Status: &status})
		}(i, id)
	}
	wg.Wait()

	successes, rejections := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, stock.ErrInsufficientStock):
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || rejections != 1 {
		t.Errorf("expected exactly one success and one rejection, got %d/%d", successes, rejections)
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 0 {
		t.Errorf("expected final quantity 0, got %d", got.Quantity)
	}
}

func TestDeleteOrder_NoStockReversal(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, 4)
	o := f.createOrder(t, p.ID, StatusReady)

	if _, err := f.update(t, o.ID, StatusClaimed); err != nil {
		t.Fatalf("claiming: %v", err)
	}
	if err := f.orders.Delete(o.ID); err != nil {
		t.Fatalf("deleting order: %v", err)
	}

	got, _ := f.products.GetByID(p.ID)
	if got.Quantity != 3 {
		t.Errorf("deleting a claimed order must not restore stock: quantity=%d", got.Quantity)
	}
}
