package repository

import "github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"

func (r *Repository) GetViewState() domain.ViewState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.viewState
}

// OpenView 打开一个窗口。已有窗口打开时返回 domain.ErrViewAlreadyOpen，引用的员工或客户必须存在
func (r *Repository) OpenView(next domain.ViewState) (domain.ViewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if next.StaffID != nil {
		if _, ok := r.staff[*next.StaffID]; !ok {
			return r.viewState, ErrNotFound
		}
	}
	if next.ClientID != nil {
		if _, ok := r.clients[*next.ClientID]; !ok {
			return r.viewState, ErrNotFound
		}
	}

	state, err := r.viewState.Open(next)
	if err != nil {
		return r.viewState, err
	}
	r.viewState = state

	return state, nil
}

func (r *Repository) CloseView() domain.ViewState {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.viewState = domain.ClosedView()
	return r.viewState
}
