package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when an order is not found in the repository.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUserNotFound is returned when a user is not found in the repository.
	ErrUserNotFound = errors.New("user not found")

	// ErrStudentNotFound is returned when a student is not found in the repository.
	ErrStudentNotFound = errors.New("student not found")

	// ErrProductInUse is returned when deleting a product that orders still reference.
	ErrProductInUse = errors.New("product is referenced by orders")

	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")

	// ErrConcurrentModification is returned when the storage layer detected
	// contention it could not resolve within the transaction.
	ErrConcurrentModification = errors.New("concurrent modification")
)
