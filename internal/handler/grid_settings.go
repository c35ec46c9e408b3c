package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

func (h *Handler) GetGridSettings(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取日程设置成功", h.repository.GetGridSettings())
}

func (h *Handler) UpdateGridSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartTime   *string `json:"startTime" validate:"omitempty,hhmm"`
		EndTime     *string `json:"endTime" validate:"omitempty,hhmm"`
		SlotMinutes *int32  `json:"slotMinutes" validate:"omitempty,gt=0"`
		SlotPolicy  *string `json:"slotPolicy" validate:"omitempty,oneof=clip overshoot"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	settings := h.repository.GetGridSettings()
	if req.StartTime != nil {
		settings.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		settings.EndTime = *req.EndTime
	}
	if req.SlotMinutes != nil {
		settings.SlotMinutes = *req.SlotMinutes
	}
	if req.SlotPolicy != nil {
		settings.SlotPolicy = domain.SlotPolicy(*req.SlotPolicy)
	}

	if err := utils.ValidateGridSettings(settings); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateGridSettings(settings); err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionMismatch):
			h.errorResponse(w, r, "日程设置已被修改，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 设置改变后，已有员工的工作时间可能超出新的时间窗口
	warnings := make([]any, 0)
	for _, s := range h.repository.GetAllStaff() {
		for _, cw := range utils.CheckStaffAgainstGrid(s, settings) {
			warnings = append(warnings, cw)
		}
	}

	h.successResponse(w, r, "更新日程设置成功", WithWarnings{Result: settings, Warnings: warnings})
}
