package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func (h *Handler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取服务列表成功", h.repository.GetAllServices())
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	service := r.Context().Value(ServiceCtx).(*domain.Service)
	h.successResponse(w, r, "获取服务信息成功", service)
}
