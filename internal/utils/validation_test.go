package utils

import (
	"errors"
	"testing"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func validStaff() *domain.StaffMember {
	return &domain.StaffMember{ID: 1, Name: "Bia Silva", StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00", IsActive: true}
}

func fields(err error) []string {
	var errs domain.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateGridSettings(t *testing.T) {
	ok := &domain.GridSettings{StartTime: "08:00", EndTime: "18:00", SlotMinutes: 30, SlotPolicy: domain.SlotPolicyClip}
	if err := ValidateGridSettings(ok); err != nil {
		t.Fatalf("expected valid settings, got %v", err)
	}

	bad := &domain.GridSettings{StartTime: "18:00", EndTime: "08:00", SlotMinutes: 7, SlotPolicy: "round"}
	got := fields(ValidateGridSettings(bad))
	want := []string{"endTime", "slotMinutes", "slotPolicy"}
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected fields %v, got %v", want, got)
		}
	}
}

func TestValidateStaffHours(t *testing.T) {
	if err := ValidateStaffHours(validStaff()); err != nil {
		t.Fatalf("expected valid staff, got %v", err)
	}

	s := validStaff()
	s.StartTime = "9h"
	s.LunchEnd = "13:75"
	if got := fields(ValidateStaffHours(s)); len(got) != 2 {
		t.Fatalf("every malformed field should be reported, got %v", got)
	}

	s = validStaff()
	s.LunchStart = "08:00"
	s.LunchEnd = "08:30"
	if got := fields(ValidateStaffHours(s)); len(got) != 1 || got[0] != "lunchStart" {
		t.Fatalf("expected lunchStart error, got %v", got)
	}
}

func TestCheckStaffAgainstGrid(t *testing.T) {
	settings := &domain.GridSettings{StartTime: "08:00", EndTime: "20:00", SlotMinutes: 30}
	if w := CheckStaffAgainstGrid(validStaff(), settings); len(w) != 0 {
		t.Fatalf("expected no warnings, got %+v", w)
	}

	s := validStaff()
	s.StartTime = "07:00"
	s.EndTime = "21:00"
	if w := CheckStaffAgainstGrid(s, settings); len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %+v", w)
	}
}

func TestValidateAppointmentWithStaff(t *testing.T) {
	tests := []struct {
		name  string
		start string
		dur   int32
		want  []string
	}{
		{"inside hours", "09:00", 60, nil},
		{"ends exactly at closing", "17:00", 60, nil},
		{"before opening", "08:30", 30, []string{"startTime"}},
		{"starts at closing", "18:00", 30, []string{"startTime"}},
		{"runs past closing", "17:30", 60, []string{"durationMin"}},
		{"zero duration", "10:00", 0, []string{"durationMin"}},
		{"malformed start", "10", 30, []string{"startTime"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &domain.Appointment{StaffID: 1, StartTime: tt.start, DurationMin: tt.dur}
			got := fields(ValidateAppointmentWithStaff(appt, validStaff()))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}

	inactive := validStaff()
	inactive.IsActive = false
	if got := fields(ValidateAppointmentWithStaff(&domain.Appointment{StartTime: "10:00", DurationMin: 30}, inactive)); len(got) != 1 || got[0] != "staffID" {
		t.Fatalf("expected staffID error for inactive staff, got %v", got)
	}
}

func TestFindAppointmentConflicts(t *testing.T) {
	existing := []*domain.Appointment{
		{ID: "a", StaffID: 1, Date: "2025-12-30", StartTime: "10:00", DurationMin: 60},
		{ID: "b", StaffID: 2, Date: "2025-12-30", StartTime: "10:00", DurationMin: 60},
		{ID: "c", StaffID: 1, Date: "2025-12-31", StartTime: "10:00", DurationMin: 60},
	}

	appt := &domain.Appointment{ID: "new", StaffID: 1, Date: "2025-12-30", StartTime: "10:30", DurationMin: 30}
	conflicts := FindAppointmentConflicts(appt, validStaff(), existing)
	if len(conflicts) != 1 || conflicts[0].OtherID != "a" || conflicts[0].Kind != domain.ConflictAppointment {
		t.Fatalf("expected a single conflict with a, got %+v", conflicts)
	}

	lunch := &domain.Appointment{ID: "l", StaffID: 1, Date: "2025-12-30", StartTime: "11:30", DurationMin: 60}
	conflicts = FindAppointmentConflicts(lunch, validStaff(), existing)
	if len(conflicts) != 1 || conflicts[0].Kind != domain.ConflictLunch {
		t.Fatalf("expected a lunch conflict, got %+v", conflicts)
	}
}
