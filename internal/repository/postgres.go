package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"propertyfinder/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// aboutContentKey is the app_content row holding the about text
const aboutContentKey = "about"

// PostgresRepository reads the catalog and writes the search log
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryWithDB wraps an existing connection pool
func NewPostgresRepositoryWithDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// FetchCatalog returns every listing in catalog order
func (r *PostgresRepository) FetchCatalog(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT
			id, name, type, address, price, rating,
			amenities, image_urls, lat, lng, description
		FROM listings
		ORDER BY id
	`
	listings := []model.Listing{}
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// FetchAboutText returns the platform description
func (r *PostgresRepository) FetchAboutText(ctx context.Context) (string, error) {
	var body string
	query := `SELECT body FROM app_content WHERE key = $1`
	err := r.db.GetContext(ctx, &body, query, aboutContentKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("about text not found")
		}
		return "", fmt.Errorf("failed to fetch about text: %w", err)
	}
	return body, nil
}

// LogSearch logs a natural language search and the filters it produced
func (r *PostgresRepository) LogSearch(ctx context.Context, entry model.SearchLogEntry) error {
	filters, err := json.Marshal(entry.AppliedFilters)
	if err != nil {
		return fmt.Errorf("failed to marshal applied filters: %w", err)
	}

	logQuery := `
		INSERT INTO search_logs (query, source, applied_filters, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, logQuery, entry.Query, entry.Source, filters, entry.ResultCount, entry.ResponseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}
