package handler

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/cache"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/config"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/layout"
	"github.com/sysu-ecnc-dev/salon-agenda/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	layoutCache cache.LayoutCache
	parameters  *layout.Parameters
	location    *time.Location

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, layoutCache cache.LayoutCache) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// 错误中的字段名使用 json 标签，方便前端定位到具体的表单项
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerClockValidation(validate, trans); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Grid.Timezone)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		layoutCache: layoutCache,
		parameters: &layout.Parameters{
			HourHeightPx:  cfg.Grid.HourHeightPx,
			ColumnWidthPx: cfg.Grid.ColumnWidthPx,
		},
		location: loc,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.bodyLimit)

	h.Mux.Get("/healthz", h.Health)

	// 没有真正的认证后端，登录直接跳转到仪表盘
	h.Mux.Post("/auth/login", h.Login)

	h.Mux.Route("/settings/grid", func(r chi.Router) {
		r.Get("/", h.GetGridSettings)
		r.Patch("/", h.UpdateGridSettings)
	})

	h.Mux.Route("/staff", func(r chi.Router) {
		r.Get("/", h.GetAllStaff)
		r.Post("/", h.CreateStaff)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.staffMember)
			r.Get("/", h.GetStaff)
			r.Patch("/", h.UpdateStaff)
			r.Patch("/hours", h.UpdateStaffHours)
			r.Put("/hours/{weekday}", h.SetStaffWeekdayHours)
			r.Delete("/hours/{weekday}", h.ClearStaffWeekdayHours)
		})
	})

	h.Mux.Route("/services", func(r chi.Router) {
		r.Get("/", h.GetAllServices)
		r.With(h.service).Get("/{id}", h.GetService)
	})

	h.Mux.Route("/clients", func(r chi.Router) {
		r.Get("/", h.GetAllClients)
		r.Post("/", h.CreateClient)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.client)
			r.Get("/", h.GetClient)
			r.Get("/history", h.GetClientHistory)
		})
	})

	h.Mux.Route("/appointments", func(r chi.Router) {
		r.Get("/", h.GetAppointments)
		r.Post("/", h.CreateAppointment)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.appointment)
			r.Get("/", h.GetAppointment)
			r.Delete("/", h.DeleteAppointment)
		})
	})

	h.Mux.Route("/grid", func(r chi.Router) {
		r.Get("/", h.GetGrid)
		r.Get("/slots", h.GetGridSlots)
		r.Get("/export", h.ExportGrid)
	})

	h.Mux.Route("/view-state", func(r chi.Router) {
		r.Get("/", h.GetViewState)
		r.Post("/", h.OpenView)
		r.Delete("/", h.CloseView)
	})
}
