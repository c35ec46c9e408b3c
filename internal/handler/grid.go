package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/cache"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/domain"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/export"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/layout"
)

var errInvalidPolicy = errors.New("刻度策略只能是 clip 或 overshoot")

// policyParam 读取查询参数中的刻度策略，缺省使用日程设置中的策略
func policyParam(r *http.Request, settings *domain.GridSettings) (domain.SlotPolicy, error) {
	switch p := domain.SlotPolicy(r.URL.Query().Get("policy")); p {
	case "":
		if settings.SlotPolicy == "" {
			return domain.SlotPolicyClip, nil
		}
		return settings.SlotPolicy, nil
	case domain.SlotPolicyClip, domain.SlotPolicyOvershoot:
		return p, nil
	default:
		return "", errInvalidPolicy
	}
}

// dayLayout 返回某一天布局的 JSON。键中带有存储的 epoch 和版本号，任何写操作之后都会重新计算
func (h *Handler) dayLayout(ctx context.Context, date string, policy domain.SlotPolicy) ([]byte, error) {
	snap := h.repository.GetDaySnapshot(date)
	key := cache.LayoutKey(snap.Epoch, snap.Version, date, string(policy), h.parameters.HourHeightPx, h.parameters.ColumnWidthPx)

	data, ok, err := h.layoutCache.Get(ctx, key)
	if err != nil {
		// 缓存不可用时直接计算
		slog.Warn("读取布局缓存失败", "key", key, "error", err)
	} else if ok {
		return data, nil
	}

	settings := snap.Settings
	settings.SlotPolicy = policy
	engine, err := layout.New(h.parameters, &settings)
	if err != nil {
		return nil, err
	}

	l := engine.Compute(snap.Staff, snap.Appointments)
	for _, cw := range l.Warnings.Configuration {
		slog.Warn("员工工作时间配置有误", "date", date, "staffID", cw.StaffID, "field", cw.Field, "message", cw.Message)
	}

	data, err = json.Marshal(l)
	if err != nil {
		return nil, err
	}
	if err := h.layoutCache.Set(ctx, key, data); err != nil {
		slog.Warn("写入布局缓存失败", "key", key, "error", err)
	}

	return data, nil
}

func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	policy, err := policyParam(r, h.repository.GetGridSettings())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	data, err := h.dayLayout(r.Context(), date, policy)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取日程布局成功", json.RawMessage(data))
}

func (h *Handler) GetGridSlots(w http.ResponseWriter, r *http.Request) {
	settings := h.repository.GetGridSettings()
	policy, err := policyParam(r, settings)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	settings.SlotPolicy = policy

	engine, err := layout.New(h.parameters, settings)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取时间刻度成功", map[string]any{
		"slotHeight":  engine.SlotHeight(),
		"totalHeight": engine.TotalHeight(),
		"slots":       engine.SlotLabels(),
	})
}

func (h *Handler) ExportGrid(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	policy, err := policyParam(r, h.repository.GetGridSettings())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	data, err := h.dayLayout(r.Context(), date, policy)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	var l layout.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"agenda-%s.xlsx\"", date))
	if err := export.WriteXLSX(w, &l, date); err != nil {
		// 此时响应头已经写出，只能记录日志
		h.logInternalServerError(r, err)
	}
}
