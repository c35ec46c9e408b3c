package export

import (
	"fmt"
	"io"
	"math"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/layout"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	scheduleSheet = "日程"
	warningSheet  = "警告"
)

// WriteXLSX 把某一天的日程布局导出为表格：每行一个时间刻度，每列一个员工
func WriteXLSX(w io.Writer, l *layout.Layout, date string) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), scheduleSheet); err != nil {
		return err
	}

	header := []any{date}
	for _, c := range l.Columns {
		header = append(header, fmt.Sprintf("%s (%s)", c.Name, c.Initials))
	}
	if err := f.SetSheetRow(scheduleSheet, "A1", &header); err != nil {
		return fmt.Errorf("无法写入表头: %w", err)
	}
	if err := f.SetColWidth(scheduleSheet, "B", columnName(len(l.Columns)+1), 28); err != nil {
		return err
	}

	styles := make(map[string]int)
	styleFor := func(color string) (int, error) {
		if id, ok := styles[color]; ok {
			return id, nil
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Font: &excelize.Font{Color: "#FFFFFF", Bold: true},
		})
		if err != nil {
			return 0, err
		}
		styles[color] = id
		return id, nil
	}

	for i, slot := range l.Slots {
		row := i + 2
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(scheduleSheet, labelCell, slot.Label); err != nil {
			return err
		}

		slotStart := minutesAt(l, slot.Top)
		slotEnd := slotStart + int(l.SlotMinutes)

		for j, c := range l.Columns {
			text, color := describeSlot(l, c, slotStart, slotEnd)
			if text == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+2, row)
			if err := f.SetCellValue(scheduleSheet, cell, text); err != nil {
				return err
			}
			if color == "" {
				continue
			}
			styleID, err := styleFor(color)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(scheduleSheet, cell, cell, styleID); err != nil {
				return err
			}
		}
	}

	if err := writeWarnings(f, &l.Warnings); err != nil {
		return err
	}

	return f.Write(w)
}

// describeSlot 返回某一列在 [slotStart, slotEnd) 内应显示的内容，预约优先于午休和不可预约时间
func describeSlot(l *layout.Layout, c layout.Column, slotStart, slotEnd int) (string, string) {
	var text, color string
	for _, b := range c.Blocks {
		start := minutesAt(l, b.Top)
		end := minutesAt(l, b.Top+b.Height)
		if !utils.Overlaps(slotStart, slotEnd, start, end) {
			continue
		}

		switch b.Kind {
		case layout.BlockAppointment:
			label := b.ClientName
			if b.Service != "" {
				label = fmt.Sprintf("%s - %s", b.ClientName, b.Service)
			}
			if b.Conflict {
				label += " (冲突)"
			}
			return label, b.Color
		case layout.BlockLunch:
			text, color = "午休", ""
		default:
			if text == "" {
				text = "不可预约"
			}
		}
	}
	return text, color
}

func writeWarnings(f *excelize.File, w *layout.Warnings) error {
	if w.Empty() {
		return nil
	}
	if _, err := f.NewSheet(warningSheet); err != nil {
		return err
	}

	rows := [][]any{{"类型", "员工", "说明"}}
	for _, e := range w.Configuration {
		rows = append(rows, []any{"配置", e.StaffID, e.Error()})
	}
	for _, e := range w.Conflicts {
		rows = append(rows, []any{"冲突", e.StaffID, e.Error()})
	}
	for _, u := range w.Unplaced {
		rows = append(rows, []any{"未排入", u.StaffID, fmt.Sprintf("预约 %s: %s", u.AppointmentID, u.Reason)})
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(warningSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// minutesAt 把像素偏移换算回从零点开始的分钟数
func minutesAt(l *layout.Layout, top float64) int {
	gridStart, _ := utils.ParseClock(l.GridStart)
	return gridStart + int(math.Round(top*60/l.HourHeightPx))
}

func columnName(n int) string {
	name, _ := excelize.ColumnNumberToName(max(n, 1))
	return name
}
