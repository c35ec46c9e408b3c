package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

// dateParam 读取查询参数中的日期，缺省为配置时区中的今天
func (h *Handler) dateParam(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().In(h.location).Format(time.DateOnly), nil
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "", errors.New("日期格式应为 YYYY-MM-DD")
	}
	return date, nil
}

func (h *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "获取预约列表成功", h.repository.GetAppointmentsByDate(date))
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)
	h.successResponse(w, r, "获取预约信息成功", appt)
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req domain.AppointmentDraft

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetStaffByID(req.StaffID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.badRequest(w, r, domain.ValidationErrors{{Field: "staffID", Message: "员工不存在"}})
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 按预约当天是星期几使用对应的排班
	staff = staff.OnDate(req.Date)

	appt := &domain.Appointment{
		StaffID:     req.StaffID,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ServiceID:   req.ServiceID,
		Service:     req.Service,
		Date:        req.Date,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
		Color:       req.Color,
	}

	// 选择了已有客户或服务时，以目录中的名称为准，时长未填写则使用服务的默认时长
	if req.ClientID != nil {
		client, err := h.repository.GetClientByID(*req.ClientID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				h.badRequest(w, r, domain.ValidationErrors{{Field: "clientID", Message: "客户不存在"}})
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		appt.ClientName = client.Name
	}
	if req.ServiceID != nil {
		service, err := h.repository.GetServiceByID(*req.ServiceID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				h.badRequest(w, r, domain.ValidationErrors{{Field: "serviceID", Message: "服务不存在"}})
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		appt.Service = service.Name
		if appt.DurationMin == 0 {
			appt.DurationMin = service.DurationMin
		}
	}
	if appt.Color == "" {
		appt.Color = staff.Color
	}

	if err := utils.ValidateAppointmentWithStaff(appt, staff); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateAppointment(appt); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaffNotFound),
			errors.Is(err, repository.ErrClientNotFound),
			errors.Is(err, repository.ErrServiceNotFound):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 时间冲突不阻止写入，只作为警告返回给前端
	warnings := make([]any, 0)
	for _, c := range utils.FindAppointmentConflicts(appt, staff, h.repository.GetAppointmentsByDate(appt.Date)) {
		warnings = append(warnings, c)
	}

	h.successResponse(w, r, "创建预约成功", WithWarnings{Result: appt, Warnings: warnings})
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	if err := h.repository.DeleteAppointment(appt.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "预约不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "取消预约成功", nil)
}
