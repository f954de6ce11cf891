package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gittydia/IMS-BAO/internal/fulfillment"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/stock"
)

// CreateOrderHandler godoc
// @Summary Create an order for a product
// @Description Creating an order does not reserve stock; only a later transition into claimed does
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderCreateRequest true "Order to place"
// @Success 201 {object} models.Order
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Product not found"
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, entityID, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req OrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if _, err := productRepo.GetByID(req.ProductID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	status, _ := fulfillment.Normalize(req.Status)
	now := time.Now().UTC()
	order, err := orderRepo.Create(models.Order{
		ProductID:   req.ProductID,
		DateToClaim: req.DateToClaim,
		Status:      status,
		Amount:      req.Amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}

	// Link the order to the student who placed it.
	if actor.Role == "student" && entityID != 0 {
		if _, err := txnRepo.Create(models.Transaction{
			OrderID:   order.ID,
			StudentID: entityID,
			CreatedAt: now,
		}); err != nil {
			http.Error(w, "could not record transaction", http.StatusInternalServerError)
			return
		}
	}

	trail.Record(actor, "create", "order", order.ID,
		fmt.Sprintf("created order for product %d with status %s", order.ProductID, order.Status))

	created, err := orderRepo.GetByID(order.ID)
	if err != nil {
		created = order
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetOrdersHandler godoc
// @Summary List all orders with product and student data
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderHandler godoc
// @Summary Update an order's status and claim timestamp
// @Description Transitions into claimed reserve one unit of stock, transitions out of claimed restore it; the order, product and audit trail commit as one unit
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param patch body OrderUpdateRequest true "Fields to update"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Out of stock"
// @Router /orders/{id} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, _, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	var req OrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	patch := fulfillment.OrderPatch{}
	if req.Status != nil {
		status, ok := fulfillment.Normalize(*req.Status)
		if !ok {
			http.Error(w, "unknown order status", http.StatusBadRequest)
			return
		}
		patch.Status = &status
	}
	if req.DateClaimed.Set {
		if req.DateClaimed.Value == nil {
			patch.ClearDateClaimed = true
		} else {
			patch.DateClaimed = req.DateClaimed.Value
		}
	}

	updated, err := coordinator.UpdateOrder(r.Context(), actor, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, stock.ErrInsufficientStock):
			http.Error(w, "out of stock", http.StatusConflict)
		case errors.Is(err, repo.ErrConcurrentModification):
			http.Error(w, "conflicting update, please retry", http.StatusConflict)
		default:
			http.Error(w, "could not update order", http.StatusInternalServerError)
		}
		return
	}

	full, err := orderRepo.GetByID(updated.ID)
	if err != nil {
		full = updated
	}
	writeJSON(w, http.StatusOK, full)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Description Deleting does not restore stock reserved by a claimed order
// @Tags orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	actor, _, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order ID", http.StatusBadRequest)
		return
	}

	if err := orderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}

	trail.Record(actor, "delete", "order", id, "deleted order")
	w.WriteHeader(http.StatusNoContent)
}
