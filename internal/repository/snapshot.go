package repository

import "github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"

// DaySnapshot 是某一天计算日程布局所需的全部数据，在同一把读锁下取出，保证彼此一致
type DaySnapshot struct {
	Epoch        string
	Version      int64
	Date         string
	Settings     domain.GridSettings
	Staff        []*domain.StaffMember
	Appointments []*domain.Appointment
}

func (r *Repository) GetDaySnapshot(date string) *DaySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := &DaySnapshot{
		Epoch:        r.epoch,
		Version:      r.version,
		Date:         date,
		Settings:     r.settings,
		Staff:        make([]*domain.StaffMember, 0, len(r.staff)),
		Appointments: make([]*domain.Appointment, 0),
	}
	// 员工按当天是星期几取对应的排班
	for _, s := range r.staff {
		snap.Staff = append(snap.Staff, s.OnDate(date))
	}
	sortStaff(snap.Staff)

	for _, a := range r.appointments {
		if a.Date != date {
			continue
		}
		c := *a
		snap.Appointments = append(snap.Appointments, &c)
	}
	sortAppointments(snap.Appointments)

	return snap
}
