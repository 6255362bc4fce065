package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "claimdesk/internal/errors"
	"claimdesk/internal/exporter"
	"claimdesk/internal/services"
	"claimdesk/pkg/contracts/domain"
)

type trackingCtxKey struct{}

// ClaimsHandler serves the claim case resources.
type ClaimsHandler struct {
	service  *services.ClaimService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewClaimsHandler creates the handler.
func NewClaimsHandler(service *services.ClaimService, logger *slog.Logger) *ClaimsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimsHandler{
		service:  service,
		logger:   logger.With(slog.String("component", "claims_handler")),
		validate: validator.New(),
	}
}

// Routes returns the claim routes.
func (h *ClaimsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListClaims)
	r.Post("/", h.CreateClaim)
	r.Get("/export", h.ExportClaims)

	r.Route("/{tracking}", func(r chi.Router) {
		r.Use(h.TrackingCtx)
		r.Get("/", h.GetClaim)
		r.Post("/enrich", h.EnrichClaim)
	})

	return r
}

// TrackingCtx validates the tracking URL parameter and stores the parsed
// value object in the request context.
func (h *ClaimsHandler) TrackingCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tn, err := domain.NewTrackingNumber(chi.URLParam(r, "tracking"))
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), trackingCtxKey{}, tn)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ListClaims handles GET /api/claims.
func (h *ClaimsHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	cases, err := h.service.ListCases(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	resp := ClaimListResponse{
		Count: len(cases),
		Cases: make([]ClaimCaseResponse, 0, len(cases)),
	}
	for _, c := range cases {
		resp.Cases = append(resp.Cases, toClaimCaseResponse(c))
	}
	render.JSON(w, r, resp)
}

// GetClaim handles GET /api/claims/{tracking}.
func (h *ClaimsHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	tn := r.Context().Value(trackingCtxKey{}).(domain.TrackingNumber)

	c, err := h.service.GetCase(r.Context(), tn.Value())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if c == nil {
		h.renderError(w, r, apierrors.NotFoundError("claim case"))
		return
	}
	render.JSON(w, r, toClaimCaseResponse(c))
}

// CreateClaim handles POST /api/claims.
func (h *ClaimsHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req CreateClaimRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.renderError(w, r, apierrors.ErrInvalidRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.renderError(w, r, apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error()))
		return
	}

	tickets := make([]services.TicketInput, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, services.TicketInput{
			TicketID: t.TicketID,
			Amount:   t.Amount,
			Currency: t.Currency,
		})
	}

	c, err := h.service.CreateCase(r.Context(), req.TrackingNumber, tickets)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toClaimCaseResponse(c))
}

// EnrichClaim handles POST /api/claims/{tracking}/enrich.
func (h *ClaimsHandler) EnrichClaim(w http.ResponseWriter, r *http.Request) {
	tn := r.Context().Value(trackingCtxKey{}).(domain.TrackingNumber)

	var req EnrichClaimRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.renderError(w, r, apierrors.ErrInvalidRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.renderError(w, r, apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error()))
		return
	}

	money, err := domain.NewMoneyFromFloat(req.Amount, req.Currency)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	c, matched, err := h.service.EnrichCase(r.Context(), tn.Value(), money)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if c == nil {
		h.renderError(w, r, apierrors.NotFoundError("claim case"))
		return
	}

	resp := EnrichClaimResponse{Matched: matched}
	caseResp := toClaimCaseResponse(c)
	resp.Case = &caseResp
	render.JSON(w, r, resp)
}

// ExportClaims handles GET /api/claims/export, streaming all cases as CSV.
func (h *ClaimsHandler) ExportClaims(w http.ResponseWriter, r *http.Request) {
	cases, err := h.service.ListCases(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="claim_cases.csv"`)
	if err := exporter.WriteCases(w, cases); err != nil {
		h.logger.ErrorContext(r.Context(), "csv export failed", slog.String("error", err.Error()))
	}
}

func (h *ClaimsHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.FromDomain(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.Int("status", apiErr.StatusCode),
		)
	}
	if rerr := render.Render(w, r, apiErr); rerr != nil {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
	}
}
