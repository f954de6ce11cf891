package repo

import (
	"sync"

	"github.com/gittydia/IMS-BAO/internal/models"
)

type InMemoryStudentRepository struct {
	mu       sync.Mutex
	students []models.Student
	nextID   int
}

func NewInMemoryStudentRepository() *InMemoryStudentRepository {
	return &InMemoryStudentRepository{nextID: 1}
}

func (r *InMemoryStudentRepository) Create(s models.Student) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.students = append(r.students, s)
	return s, nil
}

func (r *InMemoryStudentRepository) GetAll() ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out, nil
}

func (r *InMemoryStudentRepository) GetByID(id int) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Student{}, ErrStudentNotFound
}

func (r *InMemoryStudentRepository) GetByUserID(userID int) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.UserID != nil && *s.UserID == userID {
			return s, nil
		}
	}
	return models.Student{}, ErrStudentNotFound
}

func (r *InMemoryStudentRepository) Update(s models.Student) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.students {
		if existing.ID == s.ID {
			r.students[i] = s
			return s, nil
		}
	}
	return models.Student{}, ErrStudentNotFound
}

func (r *InMemoryStudentRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return ErrStudentNotFound
}
