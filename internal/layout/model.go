package layout

import "github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"

type BlockKind string

const (
	BlockUnavailableBefore BlockKind = "unavailable_before"
	BlockUnavailableAfter  BlockKind = "unavailable_after"
	BlockLunch             BlockKind = "lunch"
	BlockAppointment       BlockKind = "appointment"
)

// Block 是一列中的一个绝对定位块，Top 和 Height 的单位都是像素
type Block struct {
	Kind          BlockKind `json:"kind"`
	Top           float64   `json:"top"`
	Height        float64   `json:"height"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	AppointmentID string    `json:"appointmentID,omitempty"`
	ClientName    string    `json:"clientName,omitempty"`
	Service       string    `json:"service,omitempty"`
	Color         string    `json:"color,omitempty"`
	Conflict      bool      `json:"conflict,omitempty"`
}

// Column: 一个员工占一列
type Column struct {
	StaffID  int64   `json:"staffID"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Color    string  `json:"color"`
	Left     float64 `json:"left"`
	Width    float64 `json:"width"`
	Blocks   []Block `json:"blocks"`
}

type SlotLabel struct {
	Label string  `json:"label"`
	Top   float64 `json:"top"`
}

// UnplacedAppointment 表示无法放入任何一列的预约
type UnplacedAppointment struct {
	AppointmentID string `json:"appointmentID"`
	StaffID       int64  `json:"staffID"`
	Reason        string `json:"reason"`
}

type Warnings struct {
	Configuration []*domain.ConfigurationError      `json:"configuration"`
	Conflicts     []*domain.SchedulingConflictError `json:"conflicts"`
	Unplaced      []UnplacedAppointment             `json:"unplaced"`
}

func (w *Warnings) Empty() bool {
	return len(w.Configuration) == 0 && len(w.Conflicts) == 0 && len(w.Unplaced) == 0
}

type Layout struct {
	GridStart    string            `json:"gridStart"`
	GridEnd      string            `json:"gridEnd"`
	SlotMinutes  int32             `json:"slotMinutes"`
	SlotPolicy   domain.SlotPolicy `json:"slotPolicy"`
	HourHeightPx float64           `json:"hourHeightPx"`
	SlotHeight   float64           `json:"slotHeight"`
	TotalHeight  float64           `json:"totalHeight"`
	TotalWidth   float64           `json:"totalWidth"`
	Slots        []SlotLabel       `json:"slots"`
	Columns      []Column          `json:"columns"`
	Warnings     Warnings          `json:"warnings"`
}

// 布局参数，均为编译期常量级别的配置
type Parameters struct {
	HourHeightPx  float64 // 60 分钟对应的像素高度
	ColumnWidthPx float64 // 每个员工列的宽度
}
