package validators

import (
	"rentmap-backend/internal/models"
)

type DecisionValidator interface {
	ValidateUpsert(decision *models.Decision) error
}

type UserValidator interface {
	ValidateRegister(user *models.User) error
	ValidateLogin(email, password string) error
}
