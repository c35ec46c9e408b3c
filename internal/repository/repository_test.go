package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/config"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	cfg := &config.Config{}
	cfg.Grid.StartTime = "07:00"
	cfg.Grid.EndTime = "22:00"
	cfg.Grid.SlotMinutes = 30
	cfg.Grid.SlotPolicy = "clip"

	r := NewRepository(cfg)
	if err := r.CreateStaff(&domain.StaffMember{Name: "Bia Silva", Color: "#0046FF", StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00", IsActive: true}); err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}
	return r
}

func TestStaff_UpdateUsesOptimisticVersion(t *testing.T) {
	r := newTestRepository(t)

	s, err := r.GetStaffByID(1)
	if err != nil {
		t.Fatalf("GetStaffByID failed: %v", err)
	}
	stale := *s

	s.EndTime = "19:00"
	if err := r.UpdateStaff(s); err != nil {
		t.Fatalf("UpdateStaff failed: %v", err)
	}
	if err := r.UpdateStaff(&stale); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}

	got, _ := r.GetStaffByID(1)
	if got.EndTime != "19:00" {
		t.Fatalf("expected end time 19:00, got %s", got.EndTime)
	}
}

func TestStaff_ReturnsCopies(t *testing.T) {
	r := newTestRepository(t)

	s, _ := r.GetStaffByID(1)
	s.Name = "changed"

	again, _ := r.GetStaffByID(1)
	if again.Name != "Bia Silva" {
		t.Fatal("mutating a returned record must not change the store")
	}
	if _, err := r.GetStaffByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppointments_CreateAndFilterByDate(t *testing.T) {
	r := newTestRepository(t)
	v0 := r.Version()

	a := &domain.Appointment{StaffID: 1, ClientName: "Ana", Date: "2025-12-30", StartTime: "10:00", DurationMin: 60}
	if err := r.CreateAppointment(a); err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	if r.Version() == v0 {
		t.Fatal("version should change after a write")
	}

	other := &domain.Appointment{StaffID: 1, ClientName: "Lucas", Date: "2025-12-31", StartTime: "09:00", DurationMin: 30}
	if err := r.CreateAppointment(other); err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}

	day := r.GetAppointmentsByDate("2025-12-30")
	if len(day) != 1 || day[0].ID != a.ID {
		t.Fatalf("expected only %s on 2025-12-30, got %+v", a.ID, day)
	}

	if err := r.CreateAppointment(&domain.Appointment{StaffID: 99, Date: "2025-12-30", StartTime: "10:00", DurationMin: 30}); !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}

	if err := r.DeleteAppointment(a.ID); err != nil {
		t.Fatalf("DeleteAppointment failed: %v", err)
	}
	if err := r.DeleteAppointment(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClients_SearchAndHistory(t *testing.T) {
	r := newTestRepository(t)

	ana := &domain.Client{Name: "Ana Jardim", Phone: "(11) 98877-6655"}
	lucas := &domain.Client{Name: "Lucas Ferreira", Email: "lucas@example.com"}
	for _, c := range []*domain.Client{ana, lucas} {
		if err := r.CreateClient(c); err != nil {
			t.Fatalf("CreateClient failed: %v", err)
		}
	}

	if got := r.GetAllClients("jard"); len(got) != 1 || got[0].ID != ana.ID {
		t.Fatalf("expected only Ana for 'jard', got %+v", got)
	}
	if got := r.GetAllClients("EXAMPLE"); len(got) != 1 || got[0].ID != lucas.ID {
		t.Fatalf("expected only Lucas for 'EXAMPLE', got %+v", got)
	}
	if got := r.GetAllClients(""); len(got) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(got))
	}

	appts := []*domain.Appointment{
		{StaffID: 1, ClientID: &ana.ID, ClientName: "Ana Jardim", Date: "2025-12-28", StartTime: "10:00", DurationMin: 30},
		{StaffID: 1, ClientName: "ana jardim", Date: "2025-12-20", StartTime: "15:00", DurationMin: 30},
		{StaffID: 1, ClientName: "Lucas Ferreira", Date: "2025-12-28", StartTime: "11:00", DurationMin: 30},
	}
	for _, a := range appts {
		if err := r.CreateAppointment(a); err != nil {
			t.Fatalf("CreateAppointment failed: %v", err)
		}
	}

	history := r.GetClientHistory(ana)
	if len(history) != 2 {
		t.Fatalf("expected 2 appointments in Ana's history, got %d", len(history))
	}
	if history[0].Date != "2025-12-20" {
		t.Fatalf("history should be sorted by date, got %s first", history[0].Date)
	}
}

func TestViewState_OnlyOneOpen(t *testing.T) {
	r := newTestRepository(t)

	staffID := int64(1)
	if _, err := r.OpenView(domain.ViewState{Kind: domain.ViewEditingStaff, StaffID: &staffID}); err != nil {
		t.Fatalf("OpenView failed: %v", err)
	}
	if _, err := r.OpenView(domain.ViewState{Kind: domain.ViewAddingAppointment}); !errors.Is(err, domain.ErrViewAlreadyOpen) {
		t.Fatalf("expected ErrViewAlreadyOpen, got %v", err)
	}
	if r.GetViewState().Kind != domain.ViewEditingStaff {
		t.Fatal("failed open must not change the current view")
	}

	r.CloseView()
	missing := int64(404)
	if _, err := r.OpenView(domain.ViewState{Kind: domain.ViewEditingStaff, StaffID: &missing}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown staff, got %v", err)
	}
}

func TestGridSettings_Update(t *testing.T) {
	r := newTestRepository(t)

	s := r.GetGridSettings()
	s.SlotMinutes = 15
	if err := r.UpdateGridSettings(s); err != nil {
		t.Fatalf("UpdateGridSettings failed: %v", err)
	}
	if got := r.GetGridSettings(); got.SlotMinutes != 15 {
		t.Fatalf("expected 15 minute slots, got %d", got.SlotMinutes)
	}

	stale := &domain.GridSettings{StartTime: "08:00", EndTime: "18:00", SlotMinutes: 30, SlotPolicy: domain.SlotPolicyClip, Version: 1}
	if err := r.UpdateGridSettings(stale); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestGetDaySnapshot(t *testing.T) {
	r := newTestRepository(t)
	for _, a := range []*domain.Appointment{
		{StaffID: 1, ClientName: "Ana", Date: "2025-12-30", StartTime: "11:00", DurationMin: 30},
		{StaffID: 1, ClientName: "Lia", Date: "2025-12-30", StartTime: "09:30", DurationMin: 30},
		{StaffID: 1, ClientName: "Rui", Date: "2025-12-29", StartTime: "09:30", DurationMin: 30},
	} {
		if err := r.CreateAppointment(a); err != nil {
			t.Fatalf("CreateAppointment failed: %v", err)
		}
	}

	snap := r.GetDaySnapshot("2025-12-30")
	if snap.Version != r.Version() {
		t.Fatalf("snapshot version %d does not match store version %d", snap.Version, r.Version())
	}
	if len(snap.Staff) != 1 || len(snap.Appointments) != 2 {
		t.Fatalf("unexpected snapshot sizes: %d staff, %d appointments", len(snap.Staff), len(snap.Appointments))
	}
	if snap.Appointments[0].ClientName != "Lia" {
		t.Fatalf("appointments should be sorted by start time, got %s first", snap.Appointments[0].ClientName)
	}
}

func TestEpochDiffersBetweenInstances(t *testing.T) {
	a := newTestRepository(t)
	b := newTestRepository(t)

	if a.Epoch() == "" || a.Epoch() == b.Epoch() {
		t.Fatalf("expected distinct non-empty epochs, got %q and %q", a.Epoch(), b.Epoch())
	}
	if snap := a.GetDaySnapshot("2025-12-30"); snap.Epoch != a.Epoch() {
		t.Fatalf("snapshot epoch %q does not match store epoch %q", snap.Epoch, a.Epoch())
	}
}

func TestGetDaySnapshot_AppliesWeeklyHours(t *testing.T) {
	r := newTestRepository(t)

	s, err := r.GetStaffByID(1)
	if err != nil {
		t.Fatalf("GetStaffByID failed: %v", err)
	}
	s.WeeklyHours = map[time.Weekday]domain.WorkingHours{
		time.Tuesday: {Enabled: true, StartTime: "10:00", EndTime: "14:00", LunchStart: "12:00", LunchEnd: "12:30"},
		time.Sunday:  {Enabled: false},
	}
	if err := r.UpdateStaff(s); err != nil {
		t.Fatalf("UpdateStaff failed: %v", err)
	}

	// 2025-12-30 是周二，2025-12-28 是周日，2025-12-29 是周一
	if got := r.GetDaySnapshot("2025-12-30").Staff[0]; got.StartTime != "10:00" || got.LunchEnd != "12:30" {
		t.Fatalf("tuesday should use its own hours, got %+v", got)
	}
	if got := r.GetDaySnapshot("2025-12-28").Staff[0]; got.IsActive {
		t.Fatalf("sunday is a day off, got %+v", got)
	}
	if got := r.GetDaySnapshot("2025-12-29").Staff[0]; got.StartTime != "09:00" || !got.IsActive {
		t.Fatalf("monday should use the default hours, got %+v", got)
	}

	// 修改返回值中的 map 不能影响存储
	got, _ := r.GetStaffByID(1)
	delete(got.WeeklyHours, time.Sunday)
	if again, _ := r.GetStaffByID(1); len(again.WeeklyHours) != 2 {
		t.Fatalf("store weekly hours were modified through a returned copy: %+v", again.WeeklyHours)
	}
}
