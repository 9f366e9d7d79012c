package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/avelineg/siren-search-widget-sub000/internal/company/domain/entity"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/metrics"
	"github.com/avelineg/siren-search-widget-sub000/internal/company/models"
	dErrors "github.com/avelineg/siren-search-widget-sub000/pkg/domain-errors"
	"github.com/avelineg/siren-search-widget-sub000/pkg/platform/httputil"
	"github.com/avelineg/siren-search-widget-sub000/pkg/requestcontext"
)

const maxBodyBytes = 1 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the company operations exposed over HTTP.
type Service interface {
	Resolve(ctx context.Context, code string) (*entity.Entity, error)
	Search(ctx context.Context, query string, limit int) ([]models.SearchHit, error)
	Establishments(ctx context.Context, siren, sessionKey string) ([]models.Establishment, error)
	GeocodeBatch(ctx context.Context, sessionKey string, items []models.Establishment) ([]models.Establishment, error)
}

// Handler wires company endpoints to the company service.
type Handler struct {
	service  Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// New constructs a company handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		metrics:  metrics,
		validate: newValidator(),
	}
}

// Register mounts company endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/companies/search", h.HandleSearch)
	r.Route("/companies/{code}", func(r chi.Router) {
		r.Get("/", h.HandleResolve)
		r.Get("/establishments", h.HandleEstablishments)
	})
	r.Post("/geocode/batch", h.HandleGeocodeBatch)
}

// HandleResolve handles GET /companies/{code}. The code is a SIRET, a SIREN
// or a company name.
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	code := chi.URLParam(r, "code")

	e, err := h.service.Resolve(ctx, code)
	if err != nil {
		h.fail(ctx, w, "company lookup failed", err, "code", code)
		return
	}

	h.logger.InfoContext(ctx, "company resolved",
		"request_id", requestcontext.RequestID(ctx),
		"siren", e.Siren,
		"degraded", e.Degraded,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, e)
}

// HandleSearch handles GET /companies/search?q=&limit=.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	hits, err := h.service.Search(ctx, query, limit)
	if err != nil {
		h.fail(ctx, w, "company search failed", err, "query", query)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSearchHits(hits))
}

// HandleEstablishments handles GET /companies/{code}/establishments?session=.
func (h *Handler) HandleEstablishments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siren := chi.URLParam(r, "code")
	session := strings.TrimSpace(r.URL.Query().Get("session"))

	items, err := h.service.Establishments(ctx, siren, session)
	if err != nil {
		h.fail(ctx, w, "establishment listing failed", err, "siren", siren)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EstablishmentsResponse{Establishments: items})
}

// HandleGeocodeBatch handles POST /geocode/batch.
func (h *Handler) HandleGeocodeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, err := decodeJSON[GeocodeBatchRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.validateStruct(req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.metrics.ObserveBatchSize(len(req.Establishments))

	items, err := h.service.GeocodeBatch(ctx, strings.TrimSpace(req.SessionKey), req.Items())
	if err != nil {
		h.fail(ctx, w, "batch geocoding failed", err, "size", len(req.Establishments))
		return
	}

	h.logger.InfoContext(ctx, "batch geocoded",
		"request_id", requestcontext.RequestID(ctx),
		"size", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, EstablishmentsResponse{Establishments: items})
}

// fail logs err and writes it. Client errors are logged at info level.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "request_id", requestcontext.RequestID(ctx), "error", err)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeUnavailable, dErrors.CodeTimeout, dErrors.CodeInvariantViolation:
		h.logger.ErrorContext(ctx, msg, attrs...)
	default:
		h.logger.InfoContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
