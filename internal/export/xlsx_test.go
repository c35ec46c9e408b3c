package export

import (
	"bytes"
	"testing"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/layout"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	engine, err := layout.New(&layout.Parameters{HourHeightPx: 100, ColumnWidthPx: 200}, &domain.GridSettings{
		StartTime: "09:00", EndTime: "14:00", SlotMinutes: 60, SlotPolicy: domain.SlotPolicyClip,
	})
	if err != nil {
		t.Fatalf("layout.New failed: %v", err)
	}
	staff := []*domain.StaffMember{
		{ID: 1, Name: "Bia Silva", Initials: "BS", Color: "#0046FF", StartTime: "10:00", EndTime: "14:00", LunchStart: "12:00", LunchEnd: "13:00", IsActive: true},
	}
	appts := []*domain.Appointment{
		{ID: "a1", StaffID: 1, ClientName: "Ana", Service: "Corte", StartTime: "11:00", DurationMin: 60},
		{ID: "a2", StaffID: 1, ClientName: "Lia", StartTime: "11:30", DurationMin: 30},
	}
	l := engine.Compute(staff, appts)

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, l, "2025-12-30"); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	want := map[string]string{
		"A1": "2025-12-30",
		"B1": "Bia Silva (BS)",
		"A2": "09:00",
		"B2": "不可预约",
		"B3": "",
		"B4": "Ana - Corte (冲突)",
		"B5": "午休",
	}
	for cell, v := range want {
		got, err := f.GetCellValue(scheduleSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", cell, err)
		}
		if got != v {
			t.Errorf("cell %s: expected %q, got %q", cell, v, got)
		}
	}

	rows, err := f.GetRows(warningSheet)
	if err != nil {
		t.Fatalf("GetRows(%s) failed: %v", warningSheet, err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one conflict row, got %d rows", len(rows))
	}
}
