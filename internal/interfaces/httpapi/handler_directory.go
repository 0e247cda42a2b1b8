package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
)

type refereeRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=80"`
	LastName    string `json:"last_name" validate:"max=80"`
	Category    string `json:"category" validate:"required"`
	DateOfBirth string `json:"date_of_birth"`
	Phone       string `json:"phone" validate:"max=40"`
	Email       string `json:"email" validate:"omitempty,email"`
	IsActive    bool   `json:"is_active"`
}

type managerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"max=80"`
	Position  string `json:"position" validate:"required"`
	Phone     string `json:"phone" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	Bio       string `json:"bio" validate:"max=4000"`
	Order     int    `json:"order" validate:"gte=0"`
	IsActive  bool   `json:"is_active"`
}

type partnerRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Category    string `json:"category" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=2000"`
	Order       int    `json:"order" validate:"gte=0"`
	IsActive    bool   `json:"is_active"`
}

func (req refereeRequest) toInput() (usecase.RefereeInput, error) {
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return usecase.RefereeInput{}, err
	}
	return usecase.RefereeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Category:    req.Category,
		DateOfBirth: dob,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    req.IsActive,
	}, nil
}

func (h *Handler) ListReferees(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReferees")
	defer span.End()

	category := r.URL.Query().Get("category")
	items, err := h.referees.List(ctx, category)
	if err != nil {
		h.fail(ctx, w, "list referees failed", err, "category", category)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, refereeToDTO)))
}

func (h *Handler) GetReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReferee")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.referees.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get referee failed", err, "referee_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refereeToDTO(item))
}

func (h *Handler) SaveReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveReferee")
	defer span.End()

	id := r.PathValue("id")
	var req refereeRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if id == "" {
		item, err := h.referees.Create(ctx, input)
		if err != nil {
			h.fail(ctx, w, "create referee failed", err)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, refereeToDTO(item))
		return
	}

	item, err := h.referees.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update referee failed", err, "referee_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, refereeToDTO(item))
}

func (h *Handler) DeleteReferee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteReferee")
	defer span.End()

	id := r.PathValue("id")
	if err := h.referees.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete referee failed", err, "referee_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	items, err := h.managers.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list managers failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, managerToDTO)))
}

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManager")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.managers.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get manager failed", err, "manager_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) SaveManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveManager")
	defer span.End()

	id := r.PathValue("id")
	var req managerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input := usecase.ManagerInput(req)

	if id == "" {
		item, err := h.managers.Create(ctx, input)
		if err != nil {
			h.fail(ctx, w, "create manager failed", err)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, managerToDTO(item))
		return
	}

	item, err := h.managers.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update manager failed", err, "manager_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteManager")
	defer span.End()

	id := r.PathValue("id")
	if err := h.managers.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete manager failed", err, "manager_id", id)
		return
	}

	writeNoContent(w)
}

// ListPartners shows active partners only unless all=true.
func (h *Handler) ListPartners(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPartners")
	defer span.End()

	all, err := queryBool(r, "all")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.partners.List(ctx, !all)
	if err != nil {
		h.fail(ctx, w, "list partners failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, partnerToDTO)))
}

func (h *Handler) GetPartner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPartner")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.partners.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get partner failed", err, "partner_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, partnerToDTO(item))
}

func (h *Handler) SavePartner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePartner")
	defer span.End()

	id := r.PathValue("id")
	var req partnerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input := usecase.PartnerInput(req)

	if id == "" {
		item, err := h.partners.Create(ctx, input)
		if err != nil {
			h.fail(ctx, w, "create partner failed", err)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, partnerToDTO(item))
		return
	}

	item, err := h.partners.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update partner failed", err, "partner_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, partnerToDTO(item))
}

func (h *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePartner")
	defer span.End()

	id := r.PathValue("id")
	if err := h.partners.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete partner failed", err, "partner_id", id)
		return
	}

	writeNoContent(w)
}
