package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrap/pkg/types"
)

func TestInsertMeasurementBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO spc_measurement_batches`).
		WithArgs("axe avant", "REF-118", `{"diameters":[11.98,12.01]}`).
		WillReturnRows(pgxmock.NewRows(measurementColumns).
			AddRow(int64(5), "axe avant", "REF-118", `{"diameters":[11.98,12.01]}`))

	repo := NewMeasurementRepository(mock)
	stored, err := repo.Insert(context.Background(), &types.MeasurementBatch{
		PieceName:      "axe avant",
		PieceReference: "REF-118",
		Measurements:   `{"diameters":[11.98,12.01]}`,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), stored.ID)
	assert.Equal(t, "axe avant", stored.PieceName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertMeasurementBatchFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO spc_measurement_batches`).
		WillReturnError(errors.New("relation does not exist"))

	repo := NewMeasurementRepository(mock)
	_, err = repo.Insert(context.Background(), &types.MeasurementBatch{PieceName: "x"})
	require.Error(t, err)

	var persistenceErr *types.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}
