package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/config"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
)

var (
	ErrNotFound        = errors.New("记录不存在")
	ErrVersionMismatch = errors.New("记录已被修改")
	ErrDuplicateID     = errors.New("ID 已存在")
	ErrStaffNotFound   = errors.New("预约引用的员工不存在")
	ErrClientNotFound  = errors.New("预约引用的客户不存在")
	ErrServiceNotFound = errors.New("预约引用的服务不存在")
)

// Repository 是整个进程共享的内存存储，所有集合按 ID 索引。
// 所有写操作串行执行，每次写操作都会使 version 加一
type Repository struct {
	cfg *config.Config

	mu           sync.RWMutex
	epoch        string // 每个实例随机生成，与 version 一起标识一份存储状态
	version      int64
	settings     domain.GridSettings
	staff        map[int64]*domain.StaffMember
	services     map[int64]*domain.Service
	clients      map[int64]*domain.Client
	appointments map[string]*domain.Appointment
	viewState    domain.ViewState

	nextStaffID   int64
	nextServiceID int64
	nextClientID  int64
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg:   cfg,
		epoch: uuid.NewString(),
		settings: domain.GridSettings{
			StartTime:   cfg.Grid.StartTime,
			EndTime:     cfg.Grid.EndTime,
			SlotMinutes: cfg.Grid.SlotMinutes,
			SlotPolicy:  domain.SlotPolicy(cfg.Grid.SlotPolicy),
			Version:     1,
		},
		staff:         make(map[int64]*domain.StaffMember),
		services:      make(map[int64]*domain.Service),
		clients:       make(map[int64]*domain.Client),
		appointments:  make(map[string]*domain.Appointment),
		viewState:     domain.ClosedView(),
		nextStaffID:   1,
		nextServiceID: 1,
		nextClientID:  1,
	}
}

// Version 在任意一次写操作后都会变化，可用作派生数据的缓存键
func (r *Repository) Version() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.version
}

func (r *Repository) Epoch() string {
	return r.epoch
}

// 调用方需要持有写锁
func (r *Repository) bump() {
	r.version++
}
