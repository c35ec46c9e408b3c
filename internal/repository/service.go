package repository

import (
	"cmp"
	"slices"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

func (r *Repository) GetAllServices() []*domain.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]*domain.Service, 0, len(r.services))
	for _, s := range r.services {
		c := *s
		services = append(services, &c)
	}
	slices.SortFunc(services, func(a, b *domain.Service) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return services
}

func (r *Repository) GetServiceByID(id int64) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}

	c := *s
	return &c, nil
}

func (r *Repository) CreateService(s *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == 0 {
		s.ID = r.nextServiceID
	}
	if _, exists := r.services[s.ID]; exists {
		return ErrDuplicateID
	}
	r.nextServiceID = max(r.nextServiceID, s.ID+1)

	c := *s
	r.services[s.ID] = &c
	r.bump()

	return nil
}
