package repo

import "github.com/gittydia/IMS-BAO/internal/models"

type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
	GetByID(id int) (models.User, error)
}
