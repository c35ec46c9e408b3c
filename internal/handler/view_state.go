package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
)

func (h *Handler) GetViewState(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取窗口状态成功", h.repository.GetViewState())
}

func (h *Handler) OpenView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind     string `json:"kind" validate:"required,oneof=closed adding_appointment editing_staff editing_schedule viewing_history configuring_grid"`
		StaffID  *int64 `json:"staffID" validate:"omitempty,gt=0"`
		ClientID *int64 `json:"clientID" validate:"omitempty,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	state, err := h.repository.OpenView(domain.ViewState{
		Kind:     domain.ViewKind(req.Kind),
		StaffID:  req.StaffID,
		ClientID: req.ClientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrViewAlreadyOpen), errors.Is(err, domain.ErrInvalidView):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "窗口引用的员工或客户不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "打开窗口成功", state)
}

// CloseView 可以重复调用
func (h *Handler) CloseView(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "关闭窗口成功", h.repository.CloseView())
}
