package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"qrap/internal/report"
	"qrap/internal/utils"
	"qrap/pkg/types"
)

const historyWindow = 7 * 24 * time.Hour

var reportColumns = utils.StructTagValues(types.Report{})

// selectColumns is the full column set for a kind; the breakdown table has
// no securisation column.
func selectColumns(kind report.Kind) []string {
	if !kind.HasSecurisation() {
		return utils.FilterSliceString(reportColumns, "securisation")
	}
	return reportColumns
}

// insertColumns additionally drops the server-assigned id.
func insertColumns(kind report.Kind) []string {
	return utils.FilterSliceString(selectColumns(kind), "id")
}

type ReportRepository struct {
	db  Querier
	now func() time.Time
}

func NewReportRepository(db Querier) *ReportRepository {
	return &ReportRepository{db: db, now: time.Now}
}

// Insert writes one report row in a single parameterized statement and
// returns it as stored, including the assigned id.
func (r *ReportRepository) Insert(ctx context.Context, kind report.Kind, rec *types.Report) (*types.Report, error) {

	cols := insertColumns(kind)
	recMap := utils.StructToMap(rec)

	values := make([]any, 0, len(cols))
	for _, col := range cols {
		values = append(values, recMap[col])
	}

	query, args, err := psql().
		Insert(kind.Table()).
		Columns(cols...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(selectColumns(kind), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s insert query: %w", kind.Table(), err)
	}

	var stored types.Report
	if err := pgxscan.Get(ctx, r.db, &stored, query, args...); err != nil {
		return nil, &types.PersistenceError{Op: "insert " + kind.Table(), Err: err}
	}

	return &stored, nil
}

// Recent returns the trailing seven days of rows for a kind, ordered
// ascending by numero. The result is never nil.
func (r *ReportRepository) Recent(ctx context.Context, kind report.Kind) ([]*types.Report, error) {

	since := r.now().Add(-historyWindow)

	query, args, err := psql().
		Select(selectColumns(kind)...).
		From(kind.Table()).
		Where(sq.GtOrEq{"submission_time": since}).
		OrderBy("numero ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s history query: %w", kind.Table(), err)
	}

	out := make([]*types.Report, 0)
	if err := pgxscan.Select(ctx, r.db, &out, query, args...); err != nil {
		return nil, &types.PersistenceError{Op: "select " + kind.Table(), Err: err}
	}

	return out, nil
}
