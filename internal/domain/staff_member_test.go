package domain

import (
	"testing"
	"time"
)

func weeklyFixture() *StaffMember {
	return &StaffMember{
		ID: 1, Name: "Bia Silva", StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00", IsActive: true,
		WeeklyHours: map[time.Weekday]WorkingHours{
			time.Saturday: {Enabled: true, StartTime: "08:00", EndTime: "14:00", LunchStart: "11:00", LunchEnd: "11:30"},
			time.Sunday:   {Enabled: false},
		},
	}
}

func TestStaffMemberOnDate(t *testing.T) {
	s := weeklyFixture()

	tests := []struct {
		date      string
		wantStart string
		wantLunch string
		active    bool
	}{
		{"2025-12-30", "09:00", "12:00", true}, // 周二，使用默认时间
		{"2026-01-03", "08:00", "11:00", true}, // 周六
		{"2026-01-04", "09:00", "12:00", false}, // 周日不上班
		{"not-a-date", "09:00", "12:00", true},
	}
	for _, tt := range tests {
		got := s.OnDate(tt.date)
		if got.StartTime != tt.wantStart || got.LunchStart != tt.wantLunch || got.IsActive != tt.active {
			t.Errorf("OnDate(%s): got start %s lunch %s active %v", tt.date, got.StartTime, got.LunchStart, got.IsActive)
		}
	}

	if s.StartTime != "09:00" || !s.IsActive {
		t.Fatalf("OnDate must not modify the receiver, got %+v", s)
	}
}

func TestStaffMemberCloneCopiesWeeklyHours(t *testing.T) {
	s := weeklyFixture()
	c := s.Clone()

	c.WeeklyHours[time.Monday] = WorkingHours{Enabled: false}
	if _, ok := s.WeeklyHours[time.Monday]; ok {
		t.Fatal("changing the clone's weekly hours leaked into the original")
	}
}
