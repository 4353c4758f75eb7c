package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"

	"qrap/internal/utils"
	"qrap/pkg/types"
)

const measurementTableName = "spc_measurement_batches"

var measurementColumns = utils.StructTagValues(types.MeasurementBatch{})

type MeasurementRepository struct {
	db Querier
}

func NewMeasurementRepository(db Querier) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

// Insert writes one measurement batch and returns the stored row. The table
// is unrelated to the report tables; the contract is the same
// single-statement insert.
func (r *MeasurementRepository) Insert(ctx context.Context, batch *types.MeasurementBatch) (*types.MeasurementBatch, error) {

	query, args, err := psql().
		Insert(measurementTableName).
		Columns("piece_name", "piece_reference", "measurements").
		Values(batch.PieceName, batch.PieceReference, batch.Measurements).
		Suffix("RETURNING " + strings.Join(measurementColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate measurement insert query: %w", err)
	}

	var stored types.MeasurementBatch
	if err := pgxscan.Get(ctx, r.db, &stored, query, args...); err != nil {
		return nil, &types.PersistenceError{Op: "insert " + measurementTableName, Err: err}
	}

	return &stored, nil
}
