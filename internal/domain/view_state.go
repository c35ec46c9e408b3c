package domain

import "errors"

type ViewKind string

const (
	ViewClosed            ViewKind = "closed"
	ViewAddingAppointment ViewKind = "adding_appointment"
	ViewEditingStaff      ViewKind = "editing_staff"
	ViewEditingSchedule   ViewKind = "editing_schedule"
	ViewViewingHistory    ViewKind = "viewing_history"
	ViewConfiguringGrid   ViewKind = "configuring_grid"
)

var (
	ErrViewAlreadyOpen = errors.New("已有打开的窗口，请先关闭")
	ErrInvalidView     = errors.New("无效的窗口状态")
)

// ViewState 同一时间只能打开一个窗口。StaffID 只在编辑员工相关窗口时有值，ClientID 只在查看历史时有值
type ViewState struct {
	Kind     ViewKind `json:"kind"`
	StaffID  *int64   `json:"staffID,omitempty"`
	ClientID *int64   `json:"clientID,omitempty"`
}

func ClosedView() ViewState {
	return ViewState{Kind: ViewClosed}
}

func (v ViewState) IsOpen() bool {
	return v.Kind != ViewClosed
}

// Validate 检查窗口类型与携带的 ID 是否匹配
func (v ViewState) Validate() error {
	switch v.Kind {
	case ViewClosed, ViewAddingAppointment, ViewConfiguringGrid:
		if v.StaffID != nil || v.ClientID != nil {
			return ErrInvalidView
		}
	case ViewEditingStaff, ViewEditingSchedule:
		if v.StaffID == nil || v.ClientID != nil {
			return ErrInvalidView
		}
	case ViewViewingHistory:
		if v.ClientID == nil || v.StaffID != nil {
			return ErrInvalidView
		}
	default:
		return ErrInvalidView
	}
	return nil
}

// Open 返回从当前状态打开 next 之后的状态
func (v ViewState) Open(next ViewState) (ViewState, error) {
	if err := next.Validate(); err != nil {
		return v, err
	}
	if !next.IsOpen() {
		return ClosedView(), nil
	}
	if v.IsOpen() {
		return v, ErrViewAlreadyOpen
	}
	return next, nil
}
