package types

// MeasurementBatch captures one SPC measurement upload for a named piece.
// Measurements is an opaque serialized JSON payload; this layer never looks
// inside it.
type MeasurementBatch struct {
	ID             int64  `db:"id" json:"id"`
	PieceName      string `db:"piece_name" json:"pieceName"`
	PieceReference string `db:"piece_reference" json:"pieceReference"`
	Measurements   string `db:"measurements" json:"measurements"`
}
