package utils

import (
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

var allowedSlotMinutes = []int32{5, 10, 15, 20, 30, 45, 60, 90, 120}

func ValidateGridSettings(s *domain.GridSettings) error {
	var errs domain.ValidationErrors

	start, err := ParseClock(s.StartTime)
	if err != nil {
		errs = append(errs, &domain.ValidationError{Field: "startTime", Message: err.Error()})
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		errs = append(errs, &domain.ValidationError{Field: "endTime", Message: err.Error()})
	}
	if len(errs) == 0 && start >= end {
		errs = append(errs, &domain.ValidationError{Field: "endTime", Message: "结束时间必须晚于开始时间"})
	}

	validSlot := false
	for _, m := range allowedSlotMinutes {
		if s.SlotMinutes == m {
			validSlot = true
			break
		}
	}
	if !validSlot {
		errs = append(errs, &domain.ValidationError{Field: "slotMinutes", Message: fmt.Sprintf("时间间隔必须是以下之一: %v", allowedSlotMinutes)})
	}

	switch s.SlotPolicy {
	case domain.SlotPolicyClip, domain.SlotPolicyOvershoot:
	default:
		errs = append(errs, &domain.ValidationError{Field: "slotPolicy", Message: "刻度策略只能是 clip 或 overshoot"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateStaffHours 检查员工自身的工作时间是否自洽，不涉及全局时间窗口
func ValidateStaffHours(staff *domain.StaffMember) error {
	var errs domain.ValidationErrors

	parse := func(field, value string) int {
		m, err := ParseClock(value)
		if err != nil {
			errs = append(errs, &domain.ValidationError{Field: field, Message: err.Error()})
		}
		return m
	}
	start := parse("startTime", staff.StartTime)
	end := parse("endTime", staff.EndTime)
	lunchStart := parse("lunchStart", staff.LunchStart)
	lunchEnd := parse("lunchEnd", staff.LunchEnd)
	if len(errs) > 0 {
		return errs
	}

	if start >= end {
		errs = append(errs, &domain.ValidationError{Field: "endTime", Message: "下班时间必须晚于上班时间"})
	}
	if lunchStart >= lunchEnd {
		errs = append(errs, &domain.ValidationError{Field: "lunchEnd", Message: "午休结束时间必须晚于午休开始时间"})
	}
	if lunchStart < start || lunchEnd > end {
		errs = append(errs, &domain.ValidationError{Field: "lunchStart", Message: "午休时间必须在工作时间之内"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckStaffAgainstGrid 返回员工工作时间超出全局时间窗口的警告，这些情况在计算布局时会被截断
func CheckStaffAgainstGrid(staff *domain.StaffMember, settings *domain.GridSettings) []*domain.ConfigurationError {
	gridStart, err1 := ParseClock(settings.StartTime)
	gridEnd, err2 := ParseClock(settings.EndTime)
	if err1 != nil || err2 != nil {
		return nil
	}

	var warnings []*domain.ConfigurationError
	check := func(field, value string) {
		m, err := ParseClock(value)
		if err != nil {
			warnings = append(warnings, &domain.ConfigurationError{StaffID: staff.ID, Field: field, Message: err.Error()})
			return
		}
		if m < gridStart || m > gridEnd {
			warnings = append(warnings, &domain.ConfigurationError{
				StaffID: staff.ID,
				Field:   field,
				Message: fmt.Sprintf("%s 超出了日程范围 %s-%s", value, settings.StartTime, settings.EndTime),
			})
		}
	}
	check("startTime", staff.StartTime)
	check("endTime", staff.EndTime)
	check("lunchStart", staff.LunchStart)
	check("lunchEnd", staff.LunchEnd)

	return warnings
}

// ValidateAppointmentWithStaff 检查预约是否落在员工的工作时间之内
func ValidateAppointmentWithStaff(appt *domain.Appointment, staff *domain.StaffMember) error {
	var errs domain.ValidationErrors

	if !staff.IsActive {
		errs = append(errs, &domain.ValidationError{Field: "staffID", Message: fmt.Sprintf("员工 %s 当前不可预约", staff.Name)})
	}
	if appt.DurationMin <= 0 {
		errs = append(errs, &domain.ValidationError{Field: "durationMin", Message: "预约时长必须大于 0"})
	}

	start, err := ParseClock(appt.StartTime)
	if err != nil {
		errs = append(errs, &domain.ValidationError{Field: "startTime", Message: err.Error()})
		return errs
	}

	staffStart, err1 := ParseClock(staff.StartTime)
	staffEnd, err2 := ParseClock(staff.EndTime)
	if err := errors.Join(err1, err2); err != nil {
		errs = append(errs, &domain.ValidationError{Field: "staffID", Message: fmt.Sprintf("员工 %s 的工作时间配置错误", staff.Name)})
		return errs
	}

	if start < staffStart || start >= staffEnd {
		errs = append(errs, &domain.ValidationError{
			Field:   "startTime",
			Message: fmt.Sprintf("开始时间必须在员工工作时间 %s-%s 之内", staff.StartTime, staff.EndTime),
		})
	} else if appt.DurationMin > 0 && start+int(appt.DurationMin) > staffEnd {
		errs = append(errs, &domain.ValidationError{
			Field:   "durationMin",
			Message: fmt.Sprintf("预约结束时间不能晚于员工下班时间 %s", staff.EndTime),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FindAppointmentConflicts 找出 appt 与同一员工同一天的其他预约以及午休时间的重叠，结果只作为警告
func FindAppointmentConflicts(appt *domain.Appointment, staff *domain.StaffMember, existing []*domain.Appointment) []*domain.SchedulingConflictError {
	start, err := ParseClock(appt.StartTime)
	if err != nil {
		return nil
	}
	end := start + int(appt.DurationMin)

	var conflicts []*domain.SchedulingConflictError

	lunchStart, err1 := ParseClock(staff.LunchStart)
	lunchEnd, err2 := ParseClock(staff.LunchEnd)
	if err1 == nil && err2 == nil && Overlaps(start, end, lunchStart, lunchEnd) {
		conflicts = append(conflicts, &domain.SchedulingConflictError{
			StaffID:       staff.ID,
			AppointmentID: appt.ID,
			Kind:          domain.ConflictLunch,
		})
	}

	for _, other := range existing {
		if other.ID == appt.ID || other.StaffID != appt.StaffID || other.Date != appt.Date {
			continue
		}
		otherStart, err := ParseClock(other.StartTime)
		if err != nil {
			continue
		}
		if Overlaps(start, end, otherStart, otherStart+int(other.DurationMin)) {
			conflicts = append(conflicts, &domain.SchedulingConflictError{
				StaffID:       staff.ID,
				AppointmentID: appt.ID,
				OtherID:       other.ID,
				Kind:          domain.ConflictAppointment,
			})
		}
	}

	return conflicts
}
