package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/auth"
	"github.com/gittydia/IMS-BAO/internal/fulfillment"
	api "github.com/gittydia/IMS-BAO/internal/http"
	handler "github.com/gittydia/IMS-BAO/internal/http/handlers"
	"github.com/gittydia/IMS-BAO/internal/models"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/session"
)

var (
	adminToken   string
	studentToken string

	productRepo  *repo.InMemoryProductRepository
	orderRepo    *repo.InMemoryOrderRepository
	activityRepo *repo.InMemoryActivityRepository
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	adminToken, err = generateToken(r, "admin@example.com", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}

	studentToken, err = registerStudent(r, "student@example.com", "secret")
	if err != nil {
		panic(fmt.Sprintf("error registering student: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	studentRepo := repo.NewInMemoryStudentRepository()
	handler.SetStudentRepo(studentRepo)

	txnRepo := repo.NewInMemoryTransactionRepository()
	handler.SetTransactionRepo(txnRepo)

	orderRepo.SetRepositories(productRepo, txnRepo, studentRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
		Firstname:    "Admin",
		Lastname:     "User",
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, orderRepo)
	handler.SetMetricsRepo(metricsRepo)

	activityRepo = repo.NewInMemoryActivityRepository()
	trail := audit.NewRecorder(activityRepo)
	handler.SetAuditRecorder(trail)
	handler.SetCoordinator(fulfillment.NewCoordinator(
		repo.NewInMemoryFulfillmentStore(orderRepo, productRepo), trail))

	sessions := session.NewInMemoryStore(time.Hour)
	handler.SetSessionStore(sessions)
	api.SetSessionStore(sessions)
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllOrders() {
	orderRepo.Clear()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func registerStudent(r http.Handler, email, password string) (string, error) {
	payload := handler.RegisterRequest{
		Email:     email,
		Password:  password,
		Role:      "student",
		Firstname: "Test",
		Lastname:  "Student",
		College:   "College of Science",
		Program:   "Computer Science",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		return "", fmt.Errorf("registration failed with status %d: %s", w.Code, w.Body.String())
	}
	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/products", adminToken, p)
}

func adjustProduct(r http.Handler, productID int, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, fmt.Sprintf("/products/%d/adjust", productID), adminToken, adj)
}

func createOrder(r http.Handler, token string, o handler.OrderCreateRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/orders", token, o)
}

// updateOrder takes the patch as a plain map so explicit nulls reach the
// wire the same way a real client sends them.
func updateOrder(r http.Handler, orderID int, patch map[string]any) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), adminToken, patch)
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) handler.ProductResponse {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product setup failed with status %d: %s", w.Code, w.Body.String()))
	}
	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding product response: %v", err))
	}
	return resp
}

func mustCreateOrder(r http.Handler, o handler.OrderCreateRequest) models.Order {
	w := createOrder(r, adminToken, o)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("order setup failed with status %d: %s", w.Code, w.Body.String()))
	}
	var resp models.Order
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("error decoding order response: %v", err))
	}
	return resp
}

func getProduct(r http.Handler, id int) (handler.ProductResponse, int) {
	w := doRequest(r, http.MethodGet, fmt.Sprintf("/products/%d", id), adminToken, nil)
	var resp handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp, w.Code
}
