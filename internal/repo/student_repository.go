package repo

import "github.com/gittydia/IMS-BAO/internal/models"

type StudentRepository interface {
	Create(student models.Student) (models.Student, error)
	GetAll() ([]models.Student, error)
	GetByID(id int) (models.Student, error)
	GetByUserID(userID int) (models.Student, error)
	Update(student models.Student) (models.Student, error)
	Delete(id int) error
}
