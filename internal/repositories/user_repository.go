package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentmap-backend/internal/models"
	"rentmap-backend/pkg/database"
	"rentmap-backend/pkg/metrics"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository() UserRepository {
	return &userRepository{
		db: database.DB,
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	row := r.db.QueryRowContext(ctx,
		`SELECT id, full_name, email, phone, password FROM users WHERE email = ?`, email)
	metrics.MySQLOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())

	var user models.User
	if err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Password); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		metrics.MySQLErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, full_name, email, phone, password) VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.FullName, user.Email, user.Phone, user.Password)
	metrics.MySQLOperationDuration.WithLabelValues("insert", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("insert", "users").Inc()
		return err
	}
	return nil
}
