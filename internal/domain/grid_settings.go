package domain

// SlotPolicy 决定当 (结束时间 - 开始时间) 不是时间间隔的整数倍时，最后一个刻度如何处理
type SlotPolicy string

const (
	SlotPolicyClip      SlotPolicy = "clip"      // 刻度不超过结束时间
	SlotPolicyOvershoot SlotPolicy = "overshoot" // 与旧版页面一致，最后一个刻度可以超过结束时间
)

type GridSettings struct {
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	SlotMinutes int32      `json:"slotMinutes"`
	SlotPolicy  SlotPolicy `json:"slotPolicy"`
	Version     int32      `json:"-"`
}
