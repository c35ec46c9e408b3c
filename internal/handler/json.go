package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误", "requestID", requestIDFrom(r), "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "服务器内部错误", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WithWarnings 用于写入成功但存在冲突或配置问题的情况
type WithWarnings struct {
	Result   any   `json:"result"`
	Warnings []any `json:"warnings"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

// badRequest 对校验错误返回所有出错的字段，message 中只放第一个错误
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(domain.ValidationErrors, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, &domain.ValidationError{Field: fe.Field(), Message: fe.Translate(h.translator)})
		}
		h.validationFailed(w, r, fields)
		return
	}

	var domainErrors domain.ValidationErrors
	if errors.As(err, &domainErrors) && len(domainErrors) > 0 {
		h.validationFailed(w, r, domainErrors)
		return
	}

	h.errorResponse(w, r, err.Error())
}

func (h *Handler) validationFailed(w http.ResponseWriter, r *http.Request, errs domain.ValidationErrors) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: errs[0].Message,
		Data:    errs,
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "服务器内部错误",
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}
