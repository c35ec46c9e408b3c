package repository

import "github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"

func (r *Repository) GetGridSettings() *domain.GridSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.settings
	return &s
}

func (r *Repository) UpdateGridSettings(s *domain.GridSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Version != r.settings.Version {
		return ErrVersionMismatch
	}

	s.Version++
	r.settings = *s
	r.bump()

	return nil
}
