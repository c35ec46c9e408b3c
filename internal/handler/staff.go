package handler

import (
	"errors"
	"maps"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

func (h *Handler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取员工列表成功", h.repository.GetAllStaff())
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staff := r.Context().Value(StaffCtx).(*domain.StaffMember)
	h.successResponse(w, r, "获取员工信息成功", staff)
}

// configurationWarnings 检查员工工作时间是否超出当前日程设置的时间窗口
func (h *Handler) configurationWarnings(staff *domain.StaffMember) []any {
	warnings := make([]any, 0)
	for _, cw := range utils.CheckStaffAgainstGrid(staff, h.repository.GetGridSettings()) {
		warnings = append(warnings, cw)
	}
	return warnings
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req domain.StaffDraft

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := &domain.StaffMember{
		Name:       req.Name,
		Initials:   req.Initials,
		Specialty:  req.Specialty,
		Color:      req.Color,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		LunchStart: req.LunchStart,
		LunchEnd:   req.LunchEnd,
		IsActive:   true,
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if staff.Initials == "" {
		staff.Initials = utils.Initials(staff.Name)
	}

	if err := utils.ValidateStaffHours(staff); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateStaff(staff); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建员工成功", WithWarnings{Result: staff, Warnings: h.configurationWarnings(staff)})
}

func (h *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string `json:"name" validate:"omitempty,min=1,max=64"`
		Initials  *string `json:"initials" validate:"omitempty,max=3"`
		Specialty *string `json:"specialty" validate:"omitempty,max=64"`
		Color     *string `json:"color" validate:"omitempty,hexcolor"`
		IsActive  *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.StaffMember)

	if req.Name != nil {
		staff.Name = *req.Name
		// 改名但没有同时给出缩写时，重新生成缩写
		if req.Initials == nil {
			staff.Initials = utils.Initials(staff.Name)
		}
	}
	if req.Initials != nil {
		staff.Initials = *req.Initials
	}
	if req.Specialty != nil {
		staff.Specialty = *req.Specialty
	}
	if req.Color != nil {
		staff.Color = *req.Color
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	h.saveStaff(w, r, staff, "更新员工信息成功")
}

func (h *Handler) UpdateStaffHours(w http.ResponseWriter, r *http.Request) {
	var req domain.StaffHoursDraft

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.StaffMember)
	staff.StartTime = req.StartTime
	staff.EndTime = req.EndTime
	staff.LunchStart = req.LunchStart
	staff.LunchEnd = req.LunchEnd

	if err := utils.ValidateStaffHours(staff); err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.saveStaff(w, r, staff, "更新工作时间成功")
}

// weekdayParam 解析路径中的星期，0 表示周日，6 表示周六
func weekdayParam(r *http.Request) (time.Weekday, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "weekday"))
	if err != nil || n < int(time.Sunday) || n > int(time.Saturday) {
		return 0, errors.New("星期只能是 0 (周日) 到 6 (周六)")
	}
	return time.Weekday(n), nil
}

func (h *Handler) SetStaffWeekdayHours(w http.ResponseWriter, r *http.Request) {
	weekday, err := weekdayParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	var req domain.WorkingHoursDraft

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.StaffMember)

	day := domain.WorkingHours{Enabled: req.Enabled}
	if req.Enabled {
		day.StartTime = req.StartTime
		day.EndTime = req.EndTime
		day.LunchStart = req.LunchStart
		day.LunchEnd = req.LunchEnd

		// 当天的排班与默认工作时间遵守同样的规则
		check := staff.Clone()
		check.StartTime, check.EndTime, check.LunchStart, check.LunchEnd = day.StartTime, day.EndTime, day.LunchStart, day.LunchEnd
		if err := utils.ValidateStaffHours(check); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	weekly := maps.Clone(staff.WeeklyHours)
	if weekly == nil {
		weekly = make(map[time.Weekday]domain.WorkingHours)
	}
	weekly[weekday] = day
	staff.WeeklyHours = weekly

	h.saveStaff(w, r, staff, "更新排班成功")
}

// ClearStaffWeekdayHours 删除某一天的单独排班，恢复使用默认工作时间
func (h *Handler) ClearStaffWeekdayHours(w http.ResponseWriter, r *http.Request) {
	weekday, err := weekdayParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	staff := r.Context().Value(StaffCtx).(*domain.StaffMember)
	if _, ok := staff.WeeklyHours[weekday]; !ok {
		h.successResponse(w, r, "当天没有单独排班", WithWarnings{Result: staff, Warnings: h.configurationWarnings(staff)})
		return
	}

	weekly := maps.Clone(staff.WeeklyHours)
	delete(weekly, weekday)
	staff.WeeklyHours = weekly

	h.saveStaff(w, r, staff, "已恢复默认工作时间")
}

func (h *Handler) saveStaff(w http.ResponseWriter, r *http.Request, staff *domain.StaffMember, msg string) {
	if err := h.repository.UpdateStaff(staff); err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionMismatch), errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, msg, WithWarnings{Result: staff, Warnings: h.configurationWarnings(staff)})
}
