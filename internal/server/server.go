package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"qrap/internal/report"
	"qrap/internal/store"
	"qrap/internal/upload"
	"qrap/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	logger *logrus.Logger
	config *types.Config

	reportsRepo      *store.ReportRepository
	measurementsRepo *store.MeasurementRepository
	uploads          *upload.Processor

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	reportsRepo *store.ReportRepository,
	measurementsRepo *store.MeasurementRepository,
	uploads *upload.Processor,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		reportsRepo:      reportsRepo,
		measurementsRepo: measurementsRepo,
		uploads:          uploads,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler so tests can drive requests without a
// listener.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(cors.AllowAll().Handler)
	r.Use(s.LoggingMiddleware)
	r.Use(s.MaxBodyBytes)

	r.HandleFunc("/api/history", s.handleHistory(report.KindSafety), http.MethodGet)
	r.HandleFunc("/api/machine-breakdown-history", s.handleHistory(report.KindBreakdown), http.MethodGet)

	r.HandleFunc("/api/form-submit", s.handleSubmit(report.KindSafety), http.MethodPost)
	r.HandleFunc("/api/machine-breakdown-submit", s.handleSubmit(report.KindBreakdown), http.MethodPost)

	r.HandleFunc("/api/submit-measurements", s.handleSubmitMeasurements, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.Handle("/uploads/...",
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploads.Dir))),
		http.MethodGet)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
