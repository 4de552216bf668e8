package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cv-analyzer/internal/config"
	"cv-analyzer/internal/logger"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB reads employer requirements. It is only used at start-up; request
// handling never touches the database.
type DB struct {
	connection *sql.DB
}

// Expected schema:
//
//	CREATE TABLE employer_requirements (
//	    variant        TEXT    NOT NULL,          -- 'api' or 'dashboard'
//	    employer       TEXT    NOT NULL,
//	    skill          TEXT    NOT NULL,
//	    min_experience INTEGER NOT NULL DEFAULT 0,
//	    position       INTEGER NOT NULL DEFAULT 0 -- order of employers
//	);
const employerQuery = `
	SELECT employer, skill, min_experience, position
	FROM employer_requirements
	WHERE variant = $1
	ORDER BY position, employer, skill`

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{connection: db}, nil
}

// NewDBFromConn wraps an existing handle.
func NewDBFromConn(conn *sql.DB) *DB {
	return &DB{connection: conn}
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing the database connection")
	}
}

// LoadEmployers returns the employers of one variant, grouped in position
// order. The minimum experience of an employer is the largest value seen
// across its rows.
func (db *DB) LoadEmployers(ctx context.Context, variant Variant) ([]config.EmployerSpec, error) {
	rows, err := db.connection.QueryContext(ctx, employerQuery, string(variant))
	if err != nil {
		return nil, fmt.Errorf("query employer requirements: %w", err)
	}
	defer rows.Close()

	var specs []config.EmployerSpec
	index := map[string]int{}
	for rows.Next() {
		var r requirementRow
		if err := rows.Scan(&r.Employer, &r.Skill, &r.MinExperience, &r.Position); err != nil {
			return nil, fmt.Errorf("scan employer requirement: %w", err)
		}

		i, ok := index[r.Employer]
		if !ok {
			i = len(specs)
			index[r.Employer] = i
			specs = append(specs, config.EmployerSpec{Name: r.Employer})
		}
		specs[i].RequiredSkills = append(specs[i].RequiredSkills, r.Skill)
		specs[i].MinExperience = max(specs[i].MinExperience, r.MinExperience)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employer requirements: %w", err)
	}

	return specs, nil
}

// ApplyTo replaces the catalog's employer lists with the database contents.
// A variant with no rows keeps the catalog's list.
func (db *DB) ApplyTo(ctx context.Context, c *config.Catalog) error {
	api, err := db.LoadEmployers(ctx, VariantAPI)
	if err != nil {
		return err
	}
	dash, err := db.LoadEmployers(ctx, VariantDashboard)
	if err != nil {
		return err
	}

	if len(api) > 0 {
		c.Employers = api
	}
	if len(dash) > 0 {
		c.DashboardEmployers = dash
	}
	logger.Info().Int("api", len(api)).Int("dashboard", len(dash)).Msg("employer requirements loaded from database")
	return c.Validate()
}
