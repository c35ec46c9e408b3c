package layout

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
)

// staffWindow 是截断到全局时间窗口之后的员工工作时间（单位：分钟）
type staffWindow struct {
	start      int
	end        int
	lunchStart int
	lunchEnd   int
	hasLunch   bool
}

type placedAppointment struct {
	start int
	end   int
	block Block
}

func (e *Engine) staffWindow(member *domain.StaffMember) (staffWindow, []*domain.ConfigurationError) {
	var warnings []*domain.ConfigurationError
	warn := func(field, msg string) {
		warnings = append(warnings, &domain.ConfigurationError{StaffID: member.ID, Field: field, Message: msg})
	}

	// 无法解析的时间按照最宽松的方式处理，并记录警告
	parse := func(field, value string, fallback int) (int, bool) {
		m, err := utils.ParseClock(value)
		if err != nil {
			warn(field, err.Error())
			return fallback, false
		}
		if m < e.gridStart || m > e.gridEnd {
			warn(field, fmt.Sprintf("%s 超出了日程范围 %s-%s，已截断", value, e.settings.StartTime, e.settings.EndTime))
			m = min(max(m, e.gridStart), e.gridEnd)
		}
		return m, true
	}

	w := staffWindow{}
	w.start, _ = parse("startTime", member.StartTime, e.gridStart)
	w.end, _ = parse("endTime", member.EndTime, e.gridEnd)
	if w.end < w.start {
		warn("endTime", "下班时间早于上班时间")
	}

	lunchStart, ok1 := parse("lunchStart", member.LunchStart, 0)
	lunchEnd, ok2 := parse("lunchEnd", member.LunchEnd, 0)
	if ok1 && ok2 {
		w.lunchStart, w.lunchEnd, w.hasLunch = lunchStart, lunchEnd, true
		if lunchEnd < lunchStart {
			warn("lunchEnd", "午休结束时间早于午休开始时间")
		}
	}

	return w, warnings
}

func (e *Engine) availabilityBlocks(w staffWindow) []Block {
	blocks := []Block{
		{
			Kind:   BlockUnavailableBefore,
			Top:    0,
			Height: max(0, e.offset(w.start)),
			Start:  e.settings.StartTime,
			End:    utils.FormatClock(w.start),
		},
		{
			Kind:   BlockUnavailableAfter,
			Top:    e.offset(w.end),
			Height: max(0, e.TotalHeight()-e.offset(w.end)),
			Start:  utils.FormatClock(w.end),
			End:    e.settings.EndTime,
		},
	}

	if w.hasLunch {
		blocks = append(blocks, Block{
			Kind:   BlockLunch,
			Top:    e.offset(w.lunchStart),
			Height: max(0, e.height(w.lunchEnd-w.lunchStart)),
			Start:  utils.FormatClock(w.lunchStart),
			End:    utils.FormatClock(w.lunchEnd),
		})
	}

	return blocks
}

func sortPlaced(ps []placedAppointment) {
	slices.SortStableFunc(ps, func(a, b placedAppointment) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.end, b.end); c != 0 {
			return c
		}
		return cmp.Compare(a.block.AppointmentID, b.block.AppointmentID)
	})
}

// markConflicts 检查同一列中预约之间、预约与午休之间的重叠，以及超出工作时间的预约，
// 有问题的预约块会被标记。w 已经截断到日程范围之内，所以超出日程范围的预约也会在这里被发现。
// ps 需要已经按开始时间排好序
func markConflicts(staffID int64, w staffWindow, ps []placedAppointment) []*domain.SchedulingConflictError {
	var conflicts []*domain.SchedulingConflictError

	for i := range ps {
		if ps[i].start < w.start || ps[i].end > w.end {
			ps[i].block.Conflict = true
			conflicts = append(conflicts, &domain.SchedulingConflictError{
				StaffID:       staffID,
				AppointmentID: ps[i].block.AppointmentID,
				Kind:          domain.ConflictOffHours,
			})
		}
		if w.hasLunch && utils.Overlaps(ps[i].start, ps[i].end, w.lunchStart, w.lunchEnd) {
			ps[i].block.Conflict = true
			conflicts = append(conflicts, &domain.SchedulingConflictError{
				StaffID:       staffID,
				AppointmentID: ps[i].block.AppointmentID,
				Kind:          domain.ConflictLunch,
			})
		}

		for j := i + 1; j < len(ps); j++ {
			if ps[j].start >= ps[i].end {
				// 已排序，后面的预约都不会再与 ps[i] 重叠
				break
			}
			if !utils.Overlaps(ps[i].start, ps[i].end, ps[j].start, ps[j].end) {
				continue
			}
			ps[i].block.Conflict = true
			ps[j].block.Conflict = true
			conflicts = append(conflicts, &domain.SchedulingConflictError{
				StaffID:       staffID,
				AppointmentID: ps[i].block.AppointmentID,
				OtherID:       ps[j].block.AppointmentID,
				Kind:          domain.ConflictAppointment,
			})
		}
	}

	return conflicts
}

func blocksOf(ps []placedAppointment) []Block {
	blocks := make([]Block, 0, len(ps))
	for _, p := range ps {
		blocks = append(blocks, p.block)
	}
	return blocks
}
