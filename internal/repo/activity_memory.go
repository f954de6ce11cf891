package repo

import (
	"errors"
	"sync"

	"github.com/gittydia/IMS-BAO/internal/models"
)

var errAppendFailed = errors.New("append failed")

type InMemoryActivityRepository struct {
	mu      sync.Mutex
	entries []models.Activity
	nextID  int

	failAppends bool
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{nextID: 1}
}

func (r *InMemoryActivityRepository) Append(e models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAppends {
		return errAppendFailed
	}
	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return nil
}

func (r *InMemoryActivityRepository) Recent(limit int) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]models.Activity, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// FailAppends makes every Append return an error; used to test the
// best-effort audit path.
func (r *InMemoryActivityRepository) FailAppends(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failAppends = fail
}

func (r *InMemoryActivityRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.nextID = 1
}
