package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentmap-backend/pkg/logger"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

const (
	usersSchema = `CREATE TABLE IF NOT EXISTS users (
		id         VARCHAR(36)  NOT NULL PRIMARY KEY,
		full_name  VARCHAR(100) NOT NULL,
		email      VARCHAR(255) NOT NULL,
		phone      VARCHAR(15)  NOT NULL DEFAULT '',
		password   VARCHAR(100) NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	)`

	decisionsSchema = `CREATE TABLE IF NOT EXISTS decisions (
		user_id     VARCHAR(36)  NOT NULL,
		listing_url VARCHAR(512) NOT NULL,
		state       VARCHAR(8)   NOT NULL DEFAULT 'none',
		note        TEXT         NOT NULL,
		updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, listing_url(191))
	)`
)

func InitDB(dsn string) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping MySQL: %v", err)
	}

	for _, schema := range []string{usersSchema, decisionsSchema} {
		if _, err := db.ExecContext(ctx, schema); err != nil {
			db.Close()
			return fmt.Errorf("failed to create schema: %v", err)
		}
	}

	DB = db
	logger.GlobalLogger.Println("MySQL connected successfully.")
	return nil
}

func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing MySQL: %v", err)
		} else {
			logger.GlobalLogger.Println("MySQL connection closed")
		}
	}
}
