package repository

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func sortAppointments(appts []*domain.Appointment) {
	slices.SortFunc(appts, func(a, b *domain.Appointment) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := cmp.Compare(a.StartTime, b.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// GetAppointmentsByDate 返回某一天的所有预约，按开始时间排序
func (r *Repository) GetAppointmentsByDate(date string) []*domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appts := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.Date != date {
			continue
		}
		c := *a
		appts = append(appts, &c)
	}
	sortAppointments(appts)

	return appts
}

// GetClientHistory 返回客户的所有预约。散客预约没有 ClientID，此时按姓名匹配
func (r *Repository) GetClientHistory(client *domain.Client) []*domain.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appts := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		var matched bool
		if a.ClientID != nil {
			matched = *a.ClientID == client.ID
		} else {
			matched = strings.EqualFold(strings.TrimSpace(a.ClientName), strings.TrimSpace(client.Name))
		}
		if !matched {
			continue
		}
		c := *a
		appts = append(appts, &c)
	}
	sortAppointments(appts)

	return appts
}

func (r *Repository) GetAppointmentByID(id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}

	c := *a
	return &c, nil
}

// CreateAppointment 追加一条预约。引用的员工、客户和服务必须存在
func (r *Repository) CreateAppointment(a *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staff[a.StaffID]; !ok {
		return ErrStaffNotFound
	}
	if a.ClientID != nil {
		if _, ok := r.clients[*a.ClientID]; !ok {
			return ErrClientNotFound
		}
	}
	if a.ServiceID != nil {
		if _, ok := r.services[*a.ServiceID]; !ok {
			return ErrServiceNotFound
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, exists := r.appointments[a.ID]; exists {
		return ErrDuplicateID
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	c := *a
	r.appointments[a.ID] = &c
	r.bump()

	return nil
}

func (r *Repository) DeleteAppointment(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return ErrNotFound
	}

	delete(r.appointments, id)
	r.bump()

	return nil
}
