// Package handler exposes the sanction workflow over HTTP. The route shapes
// mirror the command surface: one endpoint per moderator or member action.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"warden/internal/platform/middleware"
	"warden/internal/sanction/models"
	"warden/internal/sanction/ports"
	"warden/internal/sanction/service"
	"warden/internal/transport/http/shared"
	id "warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/requestcontext"
)

// Service defines the interface for sanction workflow operations.
type Service interface {
	Issue(ctx context.Context, req service.IssueRequest) (id.SanctionID, error)
	Get(ctx context.Context, sanctionID id.SanctionID) (*models.SanctionRecord, error)
	RequestEvidence(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error
	SubmitEvidence(ctx context.Context, up service.Upload) (bool, error)
	ChangeStatus(ctx context.Context, actor id.UserID, sanctionID id.SanctionID, status models.Status, customText string) (string, error)
	OpenDispute(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error
	ResolveDispute(ctx context.Context, actor id.UserID, sanctionID id.SanctionID, accepted bool) error
	Pardon(ctx context.Context, actor id.UserID, sanctionID id.SanctionID) error
}

// Handler handles sanction workflow endpoints.
type Handler struct {
	logger       *slog.Logger
	sanctions    Service
	jwtValidator middleware.JWTValidator
}

// New creates a new sanction Handler.
func New(sanctions Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		sanctions:    sanctions,
		jwtValidator: jwtValidator,
	}
}

// Register registers the sanction routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	sanctionRouter := chi.NewRouter()
	sanctionRouter.Use(middleware.Recovery(h.logger))
	sanctionRouter.Use(middleware.RequestID)
	sanctionRouter.Use(middleware.Logger(h.logger))
	sanctionRouter.Use(middleware.Timeout(30 * time.Second))
	sanctionRouter.Use(middleware.ContentTypeJSON)
	sanctionRouter.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

	sanctionRouter.Post("/sanctions", h.handleIssue)
	sanctionRouter.Get("/sanctions/{id}", h.handleGet)
	sanctionRouter.Post("/sanctions/{id}/evidence-request", h.handleRequestEvidence)
	sanctionRouter.Post("/sanctions/{id}/status", h.handleChangeStatus)
	sanctionRouter.Post("/sanctions/{id}/dispute", h.handleOpenDispute)
	sanctionRouter.Post("/sanctions/{id}/dispute/response", h.handleResolveDispute)
	sanctionRouter.Delete("/sanctions/{id}", h.handlePardon)
	sanctionRouter.Post("/uploads", h.handleUpload)

	r.Mount("/", sanctionRouter)
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	actor := requestcontext.ActorID(r.Context())
	if actor.IsNil() {
		// Should never happen behind RequireAuth.
		h.logger.ErrorContext(r.Context(), "actor missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return actor, true
}

func (h *Handler) sanctionID(w http.ResponseWriter, r *http.Request) (id.SanctionID, bool) {
	sanctionID, err := id.ParseSanctionID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return 0, false
	}
	return sanctionID, true
}

type issueRequest struct {
	Violator    string `json:"violator_id"`
	Victim      string `json:"victim_id"`
	Rule        string `json:"rule"`
	Requirement string `json:"requirement"`
	Deadline    string `json:"deadline"`
	IssuerName  string `json:"issuer_name"`
}

type issueResponse struct {
	SanctionID string `json:"sanction_id"`
}

func (h *Handler) handleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid issue request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	sanctionID, err := h.sanctions.Issue(ctx, service.IssueRequest{
		Violator:    id.UserID(req.Violator),
		Victim:      id.UserID(req.Victim),
		Rule:        req.Rule,
		Requirement: req.Requirement,
		Deadline:    req.Deadline,
		Issuer:      actor,
		IssuerName:  req.IssuerName,
	})
	if err != nil {
		h.writeFailure(ctx, w, "issue sanction", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, issueResponse{SanctionID: sanctionID.String()})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	rec, err := h.sanctions.Get(r.Context(), sanctionID)
	if err != nil {
		h.writeFailure(r.Context(), w, "get sanction", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleRequestEvidence(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	if err := h.sanctions.RequestEvidence(r.Context(), actor, sanctionID); err != nil {
		h.writeFailure(r.Context(), w, "request evidence", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type statusRequest struct {
	Status     string `json:"status"`
	CustomText string `json:"custom_text,omitempty"`
}

type statusResponse struct {
	StatusText string `json:"status_text"`
}

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	statusText, err := h.sanctions.ChangeStatus(ctx, actor, sanctionID, models.Status(req.Status), req.CustomText)
	if err != nil {
		h.writeFailure(ctx, w, "change status", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, statusResponse{StatusText: statusText})
}

func (h *Handler) handleOpenDispute(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	if err := h.sanctions.OpenDispute(r.Context(), actor, sanctionID); err != nil {
		h.writeFailure(r.Context(), w, "open dispute", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

type disputeResponseRequest struct {
	Response string `json:"response"`
}

func (h *Handler) handleResolveDispute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	var req disputeResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	var accepted bool
	switch req.Response {
	case service.PromptOptionAccept:
		accepted = true
	case service.PromptOptionReject:
		accepted = false
	default:
		shared.WriteError(w, dErrors.Newf(dErrors.CodeInvalidInput,
			"response must be %q or %q", service.PromptOptionAccept, service.PromptOptionReject))
		return
	}

	if err := h.sanctions.ResolveDispute(ctx, actor, sanctionID, accepted); err != nil {
		h.writeFailure(ctx, w, "resolve dispute", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePardon(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	sanctionID, ok := h.sanctionID(w, r)
	if !ok {
		return
	}

	if err := h.sanctions.Pardon(r.Context(), actor, sanctionID); err != nil {
		h.writeFailure(r.Context(), w, "pardon sanction", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadRequest struct {
	Channel string `json:"channel_id"`
	Message string `json:"message_id"`
	Files   []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"files"`
}

type uploadResponse struct {
	Handled bool `json:"handled"`
}

// handleUpload feeds a member's attachment message into the evidence flow.
// Uploads with no pending expectation are reported as unhandled, not errors.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	files := make([]ports.File, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, ports.File{Name: f.Name, URL: f.URL})
	}

	handled, err := h.sanctions.SubmitEvidence(ctx, service.Upload{
		Actor: actor,
		Ref: ports.MessageRef{
			Channel: id.ChannelID(req.Channel),
			Message: id.MessageID(req.Message),
		},
		Files: files,
	})
	if err != nil {
		h.writeFailure(ctx, w, "submit evidence", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, uploadResponse{Handled: handled})
}

// writeFailure logs and maps a service error. Client-caused failures log at
// warn, everything else at error.
func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, op string, err error) {
	requestID := middleware.GetRequestID(ctx)
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodePersistence:
		h.logger.ErrorContext(ctx, "failed to "+op,
			"request_id", requestID,
			"error", err.Error(),
		)
	default:
		h.logger.WarnContext(ctx, "failed to "+op,
			"request_id", requestID,
			"error", err.Error(),
		)
	}
	shared.WriteError(w, err)
}
