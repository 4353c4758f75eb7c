package server

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"qrap/internal/report"
)

const maxPhotos = 2

func (s *Service) handleHistory(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.reportsRepo.Recent(r.Context(), kind)
		if err != nil {
			s.logger.WithError(err).Error("failed to read report history")
			s.respondError(w, http.StatusInternalServerError, "failed to fetch history")
			return
		}

		s.respondJSON(w, http.StatusOK, rows)
	}
}

func (s *Service) handleSubmit(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ctx = r.Context()

		if err := r.ParseMultipartForm(s.config.MaxUploadBytes); err != nil {
			s.logger.WithError(err).Info("failed to parse multipart submission")
			s.respondError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}

		form := report.DecodeForm(r.FormValue(kind.FormField()))

		// Nothing touches disk or the store before this check passes.
		if err := report.Validate(form); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		var files []*multipart.FileHeader
		if r.MultipartForm != nil {
			files = r.MultipartForm.File["photos"]
		}
		if len(files) > maxPhotos {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("at most %d photos are accepted", maxPhotos))
			return
		}

		photos, err := s.storePhotos(files, kind, form)
		if err != nil {
			s.logger.WithError(err).Error("failed to store photos")
			s.respondError(w, http.StatusInternalServerError, "failed to store attachments")
			return
		}

		rec := report.Assemble(kind, form, photos, r.FormValue("sortingData"), time.Now())

		stored, err := s.reportsRepo.Insert(ctx, kind, rec)
		if err != nil {
			s.logger.WithError(err).Error("failed to insert report")
			s.respondError(w, http.StatusInternalServerError, "failed to save the report")
			return
		}

		s.respondJSON(w, http.StatusCreated, stored)
	}
}

// storePhotos saves each upload under a temp name, then renames the whole
// set into place. Slot order follows submission order.
func (s *Service) storePhotos(files []*multipart.FileHeader, kind report.Kind, form report.Form) ([]string, error) {
	tmps := make([]string, 0, len(files))
	originals := make([]string, 0, len(files))

	for _, fh := range files {
		tmp, err := s.uploads.SaveTemp(fh)
		if err != nil {
			return nil, err
		}
		tmps = append(tmps, tmp)
		originals = append(originals, fh.Filename)
	}

	return s.uploads.Process(tmps, originals, kind.FilePrefix(), form.Numero, form.Description)
}
