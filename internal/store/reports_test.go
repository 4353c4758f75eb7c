package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrap/internal/report"
	"qrap/pkg/types"
)

func strPtr(s string) *string { return &s }

// anyArgs returns n pgxmock.AnyArg matchers; pgxmock requires the expected
// argument count to match even when the values are not being asserted.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func sampleReport(kind report.Kind) *types.Report {
	rec := &types.Report{
		Numero:           "42",
		Description:      "Leak: bad",
		Date:             "2025-03-10",
		Time:             "08:30:00",
		SimilarIssues:    "[]",
		Name:             "jo",
		Location:         "atelier A",
		AlertContacts:    []string{},
		ImmediateActions: "[]",
		SortingData:      "{}",
		SubmissionTime:   time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		Photos:           []string{"uploads/security.42.Leak bad.photo1.jpg"},
	}
	if kind.HasSecurisation() {
		rec.Securisation = strPtr("zone balisée")
	}
	return rec
}

func storedRows(kind report.Kind, rec *types.Report, id int64) *pgxmock.Rows {
	rows := pgxmock.NewRows(selectColumns(kind))

	values := []any{
		id, rec.Numero, rec.Description, rec.Date, rec.Time, rec.SimilarIssues,
		rec.Combien, rec.Name, rec.Location, rec.AlertContacts,
	}
	if kind.HasSecurisation() {
		values = append(values, rec.Securisation)
	}
	values = append(values, rec.ImmediateActions, rec.SortingData, rec.SubmissionTime, rec.Photos)

	return rows.AddRow(values...)
}

func TestInsertSafetyReport(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := sampleReport(report.KindSafety)

	mock.ExpectQuery(`INSERT INTO form_data_security`).
		WithArgs(anyArgs(len(insertColumns(report.KindSafety)))...).
		WillReturnRows(storedRows(report.KindSafety, rec, 7))

	repo := NewReportRepository(mock)
	stored, err := repo.Insert(context.Background(), report.KindSafety, rec)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stored.ID)
	assert.Equal(t, "42", stored.Numero)
	require.NotNil(t, stored.Securisation)
	assert.Equal(t, "zone balisée", *stored.Securisation)
	assert.Equal(t, rec.Photos, stored.Photos)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBreakdownReportTargetsBreakdownTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := sampleReport(report.KindBreakdown)

	mock.ExpectQuery(`INSERT INTO form_data_machine_breakdown`).
		WithArgs(anyArgs(len(insertColumns(report.KindBreakdown)))...).
		WillReturnRows(storedRows(report.KindBreakdown, rec, 3))

	repo := NewReportRepository(mock)
	stored, err := repo.Insert(context.Background(), report.KindBreakdown, rec)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stored.ID)
	assert.Nil(t, stored.Securisation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertFailureIsPersistenceError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO form_data_security`).
		WillReturnError(errors.New("connection refused"))

	repo := NewReportRepository(mock)
	_, err = repo.Insert(context.Background(), report.KindSafety, sampleReport(report.KindSafety))
	require.Error(t, err)

	var persistenceErr *types.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}

func TestRecentUsesTrailingSevenDayWindow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rec := sampleReport(report.KindSafety)
	mock.ExpectQuery(`SELECT .+ FROM form_data_security`).
		WithArgs(fixed.Add(-historyWindow)).
		WillReturnRows(storedRows(report.KindSafety, rec, 7))

	repo := NewReportRepository(mock)
	repo.now = func() time.Time { return fixed }

	rows, err := repo.Recent(context.Background(), report.KindSafety)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "42", rows[0].Numero)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentEmptyWindowReturnsEmptySlice(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT .+ FROM form_data_machine_breakdown`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(selectColumns(report.KindBreakdown)))

	repo := NewReportRepository(mock)

	rows, err := repo.Recent(context.Background(), report.KindBreakdown)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestColumnSetsPerKind(t *testing.T) {
	assert.Contains(t, selectColumns(report.KindSafety), "securisation")
	assert.NotContains(t, selectColumns(report.KindBreakdown), "securisation")

	assert.NotContains(t, insertColumns(report.KindSafety), "id")
	assert.NotContains(t, insertColumns(report.KindBreakdown), "id")
}
