package handler

import "net/http"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "服务正常", map[string]any{
		"environment": h.config.Environment,
		"version":     h.repository.Version(),
	})
}

// Login 不做任何校验，直接跳转到仪表盘
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.config.Server.LoginRedirect, http.StatusSeeOther)
}
