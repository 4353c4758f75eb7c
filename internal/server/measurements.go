package server

import (
	"encoding/json"
	"net/http"

	"qrap/pkg/types"
)

type measurementRequest struct {
	PieceName      string          `json:"pieceName"`
	PieceReference string          `json:"pieceReference"`
	Measurements   json.RawMessage `json:"measurements"`
}

// handleSubmitMeasurements is a straight pass-through to the measurement
// table; the payload itself is opaque to this layer.
func (s *Service) handleSubmitMeasurements(w http.ResponseWriter, r *http.Request) {
	var req measurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WithError(err).Info("failed to decode measurement payload")
		s.respondError(w, http.StatusInternalServerError, "failed to save measurements")
		return
	}

	measurements := "null"
	if len(req.Measurements) > 0 {
		measurements = string(req.Measurements)
	}

	batch := &types.MeasurementBatch{
		PieceName:      req.PieceName,
		PieceReference: req.PieceReference,
		Measurements:   measurements,
	}

	stored, err := s.measurementsRepo.Insert(r.Context(), batch)
	if err != nil {
		s.logger.WithError(err).Error("failed to insert measurement batch")
		s.respondError(w, http.StatusInternalServerError, "failed to save measurements")
		return
	}

	s.respondJSON(w, http.StatusCreated, stored)
}
