package handler

import (
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/config"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/metrics"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	metrics    *metrics.Metrics

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, m *metrics.Metrics) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 校验问题中的字段名使用 json 标签，与调用方看到的载荷保持一致
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
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

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		metrics:    m,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/schedules", func(r chi.Router) {
		r.Post("/auto-generate", h.AutoGenerateSchedule)
	})

	h.Mux.Get("/healthz", h.Healthz)
	h.Mux.Handle("/metrics", promhttp.Handler())
}
