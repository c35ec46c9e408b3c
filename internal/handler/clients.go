package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func (h *Handler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取客户列表成功", h.repository.GetAllClients(r.URL.Query().Get("q")))
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	client := r.Context().Value(ClientCtx).(*domain.Client)
	h.successResponse(w, r, "获取客户信息成功", client)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req domain.ClientDraft

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	client := &domain.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}
	if err := h.repository.CreateClient(client); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建客户成功", client)
}

func (h *Handler) GetClientHistory(w http.ResponseWriter, r *http.Request) {
	client := r.Context().Value(ClientCtx).(*domain.Client)
	h.successResponse(w, r, "获取客户历史记录成功", h.repository.GetClientHistory(client))
}
