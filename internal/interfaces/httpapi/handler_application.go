package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type applicationRequest struct {
	SeasonID       string `json:"season_id" validate:"required"`
	ClubName       string `json:"club_name" validate:"required,max=200"`
	ShortName      string `json:"short_name" validate:"max=50"`
	City           string `json:"city" validate:"required,max=100"`
	FoundedYear    int    `json:"founded_year" validate:"gte=0"`
	ContactPerson  string `json:"contact_person" validate:"required,max=200"`
	ContactPhone   string `json:"contact_phone" validate:"max=32"`
	ContactEmail   string `json:"contact_email" validate:"omitempty,email"`
	CoachName      string `json:"coach_name" validate:"required,max=200"`
	AssistantCoach string `json:"assistant_coach" validate:"max=200"`
	Description    string `json:"description" validate:"max=4000"`
}

type approveApplicationRequest struct {
	GroupID string `json:"group_id"`
}

type rejectApplicationRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type approvedApplicationDTO struct {
	Application applicationDTO `json:"application"`
	Club        clubDTO        `json:"club"`
}

// ListApplications filters by season_id and status.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListApplications")
	defer span.End()

	query := r.URL.Query()
	filter := application.Filter{
		SeasonID: strings.TrimSpace(query.Get("season_id")),
		Status:   application.Status(strings.TrimSpace(query.Get("status"))),
	}
	items, err := h.applications.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list club applications failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, applicationToDTO)))
}

func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetApplication")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.applications.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get club application failed", err, "application_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, applicationToDTO(item))
}

func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateApplication")
	defer span.End()

	var req applicationRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.applications.Create(ctx, usecase.ApplicationInput{
		SeasonID:       req.SeasonID,
		ClubName:       req.ClubName,
		ShortName:      req.ShortName,
		City:           req.City,
		FoundedYear:    req.FoundedYear,
		ContactPerson:  req.ContactPerson,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		CoachName:      req.CoachName,
		AssistantCoach: req.AssistantCoach,
		Description:    req.Description,
	})
	if err != nil {
		h.fail(ctx, w, "create club application failed", err, "season_id", req.SeasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, applicationToDTO(item))
}

func (h *Handler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveApplication")
	defer span.End()

	id := r.PathValue("id")
	var req approveApplicationRequest
	if err := h.decodeOptional(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, registered, err := h.applications.Approve(ctx, id, req.GroupID)
	if err != nil {
		h.fail(ctx, w, "approve club application failed", err, "application_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, approvedApplicationDTO{
		Application: applicationToDTO(item),
		Club:        clubToDTO(registered),
	})
}

func (h *Handler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectApplication")
	defer span.End()

	id := r.PathValue("id")
	var req rejectApplicationRequest
	if err := h.decodeOptional(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.applications.Reject(ctx, id, req.Reason)
	if err != nil {
		h.fail(ctx, w, "reject club application failed", err, "application_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, applicationToDTO(item))
}

func (h *Handler) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WithdrawApplication")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.applications.Withdraw(ctx, id)
	if err != nil {
		h.fail(ctx, w, "withdraw club application failed", err, "application_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, applicationToDTO(item))
}

func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteApplication")
	defer span.End()

	id := r.PathValue("id")
	if err := h.applications.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete club application failed", err, "application_id", id)
		return
	}

	writeNoContent(w)
}
