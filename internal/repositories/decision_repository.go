package repositories

import (
	"context"
	"database/sql"
	"time"

	"rentmap-backend/internal/models"
	"rentmap-backend/pkg/database"
	"rentmap-backend/pkg/metrics"
)

type decisionRepository struct {
	db *sql.DB
}

func NewDecisionRepository() DecisionRepository {
	return &decisionRepository{
		db: database.DB,
	}
}

func (r *decisionRepository) FindByURL(ctx context.Context, userID, listingURL string) (*models.Decision, error) {
	start := time.Now()
	row := r.db.QueryRowContext(ctx,
		`SELECT listing_url, state, note, updated_at FROM decisions WHERE user_id = ? AND listing_url = ?`,
		userID, listingURL)
	metrics.MySQLOperationDuration.WithLabelValues("find_one", "decisions").Observe(time.Since(start).Seconds())

	var d models.Decision
	if err := row.Scan(&d.ListingURL, &d.State, &d.Note, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		metrics.MySQLErrorsTotal.WithLabelValues("find_one", "decisions").Inc()
		return nil, err
	}
	return &d, nil
}

func (r *decisionRepository) FindAllByUser(ctx context.Context, userID string) ([]models.Decision, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx,
		`SELECT listing_url, state, note, updated_at FROM decisions WHERE user_id = ? ORDER BY updated_at DESC`,
		userID)
	metrics.MySQLOperationDuration.WithLabelValues("find_all", "decisions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("find_all", "decisions").Inc()
		return nil, err
	}
	defer rows.Close()

	decisions := []models.Decision{}
	for rows.Next() {
		var d models.Decision
		if err := rows.Scan(&d.ListingURL, &d.State, &d.Note, &d.UpdatedAt); err != nil {
			metrics.MySQLErrorsTotal.WithLabelValues("find_all", "decisions").Inc()
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

func (r *decisionRepository) Upsert(ctx context.Context, userID string, decision *models.Decision) error {
	start := time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decisions (user_id, listing_url, state, note)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE state = VALUES(state), note = VALUES(note)`,
		userID, decision.ListingURL, decision.State, decision.Note)
	metrics.MySQLOperationDuration.WithLabelValues("upsert", "decisions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MySQLErrorsTotal.WithLabelValues("upsert", "decisions").Inc()
		return err
	}
	return nil
}
