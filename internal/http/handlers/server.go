package handlers

import (
	"github.com/gittydia/IMS-BAO/internal/audit"
	"github.com/gittydia/IMS-BAO/internal/fulfillment"
	"github.com/gittydia/IMS-BAO/internal/repo"
	"github.com/gittydia/IMS-BAO/internal/session"
)

var (
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
	studentRepo repo.StudentRepository
	userRepo    repo.UserRepository
	txnRepo     repo.TransactionRepository
	metricsRepo repo.MetricsRepository

	coordinator  *fulfillment.Coordinator
	trail        *audit.Recorder
	sessionStore session.Store
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetStudentRepo(r repo.StudentRepository) {
	studentRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetTransactionRepo(r repo.TransactionRepository) {
	txnRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetCoordinator(c *fulfillment.Coordinator) {
	coordinator = c
}

func SetAuditRecorder(r *audit.Recorder) {
	trail = r
}

func SetSessionStore(s session.Store) {
	sessionStore = s
}
