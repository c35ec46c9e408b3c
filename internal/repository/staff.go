package repository

import (
	"cmp"
	"slices"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func (r *Repository) GetAllStaff() []*domain.StaffMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff := make([]*domain.StaffMember, 0, len(r.staff))
	for _, s := range r.staff {
		staff = append(staff, s.Clone())
	}
	sortStaff(staff)

	return staff
}

func sortStaff(staff []*domain.StaffMember) {
	slices.SortFunc(staff, func(a, b *domain.StaffMember) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

func (r *Repository) GetStaffByID(id int64) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s.Clone(), nil
}

func (r *Repository) CreateStaff(s *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.nextStaffID
	}
	if _, exists := r.staff[s.ID]; exists {
		return ErrDuplicateID
	}
	r.nextStaffID = max(r.nextStaffID, s.ID+1)
	s.Version = 1

	r.staff[s.ID] = s.Clone()
	r.bump()

	return nil
}

// UpdateStaff 使用乐观锁，s.Version 必须与存储中的版本一致
func (r *Repository) UpdateStaff(s *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.staff[s.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != s.Version {
		return ErrVersionMismatch
	}

	s.Version++
	r.staff[s.ID] = s.Clone()
	r.bump()

	return nil
}
