package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"cv-analyzer/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryRE = regexp.QuoteMeta("FROM employer_requirements")

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewDBFromConn(conn), mock
}

func TestLoadEmployersGroupsRows(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"employer", "skill", "min_experience", "position"}).
		AddRow("Google", "python", 3, 0).
		AddRow("Google", "ml", 3, 0).
		AddRow("Tesla", "robotics", 5, 1).
		AddRow("Google", "ai", 4, 0)
	mock.ExpectQuery(queryRE).WithArgs("dashboard").WillReturnRows(rows)

	specs, err := db.LoadEmployers(context.Background(), VariantDashboard)
	require.NoError(t, err)

	assert.Equal(t, []config.EmployerSpec{
		{Name: "Google", RequiredSkills: []string{"python", "ml", "ai"}, MinExperience: 4},
		{Name: "Tesla", RequiredSkills: []string{"robotics"}, MinExperience: 5},
	}, specs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadEmployersQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(queryRE).WillReturnError(errors.New("relation does not exist"))

	_, err := db.LoadEmployers(context.Background(), VariantAPI)
	assert.ErrorContains(t, err, "relation does not exist")
}

func TestApplyToKeepsCatalogWhenVariantEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"employer", "skill", "min_experience", "position"}
	mock.ExpectQuery(queryRE).WithArgs("api").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("Acme", "go", 0, 0))
	mock.ExpectQuery(queryRE).WithArgs("dashboard").
		WillReturnRows(sqlmock.NewRows(cols))

	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)
	dashboard := catalog.DashboardEmployers

	require.NoError(t, db.ApplyTo(context.Background(), catalog))
	assert.Equal(t, []config.EmployerSpec{{Name: "Acme", RequiredSkills: []string{"go"}}}, catalog.Employers)
	assert.Equal(t, dashboard, catalog.DashboardEmployers)
}

func TestApplyToRejectsDuplicateSkills(t *testing.T) {
	db, mock := newMockDB(t)
	cols := []string{"employer", "skill", "min_experience", "position"}
	mock.ExpectQuery(queryRE).WithArgs("api").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("Amazon", "aws", 0, 0).AddRow("Amazon", "AWS", 0, 0))
	mock.ExpectQuery(queryRE).WithArgs("dashboard").
		WillReturnRows(sqlmock.NewRows(cols))

	catalog, err := config.LoadCatalog("")
	require.NoError(t, err)

	err = db.ApplyTo(context.Background(), catalog)
	assert.ErrorContains(t, err, "twice")
}
