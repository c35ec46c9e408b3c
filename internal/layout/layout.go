package layout

import (
	"fmt"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

// Engine 根据全局时间窗口把时间映射为像素偏移。Engine 本身不保存任何可变状态，
// 同样的输入多次调用 Compute 得到的结果完全一致
type Engine struct {
	parameters  *Parameters
	settings    domain.GridSettings
	gridStart   int
	gridEnd     int
	slotMinutes int
}

func New(parameters *Parameters, settings *domain.GridSettings) (*Engine, error) {
	var errs domain.ValidationErrors

	gridStart, err := utils.ParseClock(settings.StartTime)
	if err != nil {
		return nil, err
	}
	gridEnd, err := utils.ParseClock(settings.EndTime)
	if err != nil {
		return nil, err
	}
	if gridStart >= gridEnd {
		errs = append(errs, &domain.ValidationError{Field: "endTime", Message: "结束时间必须晚于开始时间"})
	}
	if settings.SlotMinutes <= 0 {
		errs = append(errs, &domain.ValidationError{Field: "slotMinutes", Message: "时间间隔必须大于 0"})
	}
	if parameters.HourHeightPx <= 0 {
		errs = append(errs, &domain.ValidationError{Field: "hourHeightPx", Message: "每小时高度必须大于 0"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	s := *settings
	if s.SlotPolicy == "" {
		s.SlotPolicy = domain.SlotPolicyClip
	}

	return &Engine{
		parameters:  parameters,
		settings:    s,
		gridStart:   gridStart,
		gridEnd:     gridEnd,
		slotMinutes: int(settings.SlotMinutes),
	}, nil
}

// TimeToOffset 返回时间 t 相对于日程开始时间的纵向偏移
func (e *Engine) TimeToOffset(t string) (float64, error) {
	m, err := utils.ParseClock(t)
	if err != nil {
		return 0, err
	}
	return e.offset(m), nil
}

func (e *Engine) offset(minutes int) float64 {
	return float64(minutes-e.gridStart) * e.parameters.HourHeightPx / 60
}

func (e *Engine) height(minutes int) float64 {
	return float64(minutes) * e.parameters.HourHeightPx / 60
}

func (e *Engine) SlotHeight() float64 {
	return e.height(e.slotMinutes)
}

func (e *Engine) TotalHeight() float64 {
	return e.offset(e.gridEnd)
}

// SlotLabels 生成从开始时间起、以 slotMinutes 为步长的刻度。
// clip 策略下刻度不会超过结束时间；overshoot 策略下最后一个刻度会补齐到不小于结束时间
func (e *Engine) SlotLabels() []SlotLabel {
	span := e.gridEnd - e.gridStart
	n := span / e.slotMinutes
	if e.settings.SlotPolicy == domain.SlotPolicyOvershoot && span%e.slotMinutes != 0 {
		n++
	}

	labels := make([]SlotLabel, 0, n+1)
	for k := 0; k <= n; k++ {
		m := e.gridStart + k*e.slotMinutes
		labels = append(labels, SlotLabel{
			Label: utils.FormatClock(m),
			Top:   e.offset(m),
		})
	}
	return labels
}

func (e *Engine) Compute(staff []*domain.StaffMember, appointments []*domain.Appointment) *Layout {
	l := &Layout{
		GridStart:    e.settings.StartTime,
		GridEnd:      e.settings.EndTime,
		SlotMinutes:  e.settings.SlotMinutes,
		SlotPolicy:   e.settings.SlotPolicy,
		HourHeightPx: e.parameters.HourHeightPx,
		SlotHeight:   e.SlotHeight(),
		TotalHeight:  e.TotalHeight(),
		Slots:        e.SlotLabels(),
		Columns:      make([]Column, 0, len(staff)),
		Warnings: Warnings{
			Configuration: []*domain.ConfigurationError{},
			Conflicts:     []*domain.SchedulingConflictError{},
			Unplaced:      []UnplacedAppointment{},
		},
	}

	columnIndex := make(map[int64]int)
	windows := make(map[int64]staffWindow)
	known := make(map[int64]bool)

	for _, member := range staff {
		known[member.ID] = true
		if !member.IsActive {
			continue
		}

		w, warnings := e.staffWindow(member)
		l.Warnings.Configuration = append(l.Warnings.Configuration, warnings...)

		columnIndex[member.ID] = len(l.Columns)
		windows[member.ID] = w
		l.Columns = append(l.Columns, Column{
			StaffID:  member.ID,
			Name:     member.Name,
			Initials: member.Initials,
			Color:    member.Color,
			Left:     float64(len(l.Columns)) * e.parameters.ColumnWidthPx,
			Width:    e.parameters.ColumnWidthPx,
			Blocks:   e.availabilityBlocks(w),
		})
	}
	l.TotalWidth = float64(len(l.Columns)) * e.parameters.ColumnWidthPx

	placed := make(map[int64][]placedAppointment)
	for _, appt := range appointments {
		idx, ok := columnIndex[appt.StaffID]
		if !ok {
			reason := "员工不存在"
			if known[appt.StaffID] {
				reason = "员工当前不可预约"
			}
			l.Warnings.Unplaced = append(l.Warnings.Unplaced, UnplacedAppointment{AppointmentID: appt.ID, StaffID: appt.StaffID, Reason: reason})
			continue
		}

		start, err := utils.ParseClock(appt.StartTime)
		if err != nil {
			l.Warnings.Unplaced = append(l.Warnings.Unplaced, UnplacedAppointment{AppointmentID: appt.ID, StaffID: appt.StaffID, Reason: err.Error()})
			continue
		}
		duration := int(appt.DurationMin)
		if duration < 0 {
			l.Warnings.Configuration = append(l.Warnings.Configuration, &domain.ConfigurationError{
				StaffID: appt.StaffID,
				Field:   "durationMin",
				Message: fmt.Sprintf("预约 %s 的时长 %d 为负数，已按 0 处理", appt.ID, appt.DurationMin),
			})
			duration = 0
		}

		color := appt.Color
		if color == "" {
			color = l.Columns[idx].Color
		}

		placed[appt.StaffID] = append(placed[appt.StaffID], placedAppointment{
			start: start,
			end:   start + duration,
			block: Block{
				Kind:          BlockAppointment,
				Top:           e.offset(start),
				Height:        e.height(duration),
				Start:         utils.FormatClock(start),
				End:           utils.FormatClock(start + duration),
				AppointmentID: appt.ID,
				ClientName:    appt.ClientName,
				Service:       appt.Service,
				Color:         color,
			},
		})
	}

	// 按列顺序处理，保证警告的顺序稳定
	for i := range l.Columns {
		staffID := l.Columns[i].StaffID
		ps := placed[staffID]
		sortPlaced(ps)
		l.Warnings.Conflicts = append(l.Warnings.Conflicts, markConflicts(staffID, windows[staffID], ps)...)
		l.Columns[i].Blocks = append(l.Columns[i].Blocks, blocksOf(ps)...)
	}

	return l
}
