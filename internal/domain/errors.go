package domain

import (
	"fmt"
	"strings"
)

// TimeParseError 表示无法解析的 HH:MM 时间
type TimeParseError struct {
	Value string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("无法解析时间 %q，格式应为 HH:MM", e.Value)
}

// ValidationError 是字段级别的错误，一个字段出错不影响其他字段的校验
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

type ConflictKind string

const (
	ConflictAppointment ConflictKind = "appointment" // 与同一列中的另一个预约重叠
	ConflictLunch       ConflictKind = "lunch"       // 与午休时间重叠
	ConflictOffHours    ConflictKind = "off_hours"   // 超出员工当天的工作时间或日程范围
)

// SchedulingConflictError 只作为警告返回，不会阻止渲染或写入
type SchedulingConflictError struct {
	StaffID       int64        `json:"staffID"`
	AppointmentID string       `json:"appointmentID"`
	OtherID       string       `json:"otherID,omitempty"`
	Kind          ConflictKind `json:"kind"`
}

func (e *SchedulingConflictError) Error() string {
	switch e.Kind {
	case ConflictLunch:
		return fmt.Sprintf("预约 %s 与员工 %d 的午休时间冲突", e.AppointmentID, e.StaffID)
	case ConflictOffHours:
		return fmt.Sprintf("预约 %s 超出了员工 %d 的工作时间", e.AppointmentID, e.StaffID)
	default:
		return fmt.Sprintf("员工 %d 的预约 %s 与预约 %s 时间冲突", e.StaffID, e.AppointmentID, e.OtherID)
	}
}

// ConfigurationError 表示员工工作时间配置有误，计算时会被截断处理
type ConfigurationError struct {
	StaffID int64  `json:"staffID"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("员工 %d 的 %s 配置错误: %s", e.StaffID, e.Field, e.Message)
}
