package repository

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

// GetAllClients 按姓名、电话或邮箱做不区分大小写的子串匹配，query 为空时返回全部
func (r *Repository) GetAllClients(query string) []*domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))

	clients := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Phone), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		cc := *c
		clients = append(clients, &cc)
	}
	slices.SortFunc(clients, func(a, b *domain.Client) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return clients
}

func (r *Repository) GetClientByID(id int64) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return nil, ErrNotFound
	}

	cc := *c
	return &cc, nil
}

func (r *Repository) CreateClient(c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		c.ID = r.nextClientID
	}
	if _, exists := r.clients[c.ID]; exists {
		return ErrDuplicateID
	}
	r.nextClientID = max(r.nextClientID, c.ID+1)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	cc := *c
	r.clients[c.ID] = &cc
	r.bump()

	return nil
}
