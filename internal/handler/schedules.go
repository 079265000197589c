package handler

import (
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/scheduler"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/utils"
)

// AutoGenerateSchedule 处理 POST /schedules/auto-generate
//
// 该接口是纯计算：校验载荷、生成一周的排班并返回，不做任何持久化，
// 调用方如果需要保存结果由其自行负责
func (h *Handler) AutoGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if err := h.readJSON(r, &req); err != nil {
		h.metrics.RecordGeneration("validation_failed", 0, 0)
		h.validationFailed(w, r, []domain.Issue{{
			Field:   "body",
			Message: "请求体不是合法的 JSON: " + err.Error(),
			Code:    "invalid_json",
		}})
		return
	}

	// 结构性校验和语义校验的问题一起收集，调用方可以一轮修完整个载荷
	var issues []domain.Issue
	if err := h.validate.Struct(&req); err != nil {
		issues = append(issues, h.translateValidationErrors(err)...)
	}
	issues = append(issues, utils.ValidateGenerateRequest(&req, h.config.Scheduler.MinYear)...)

	if len(issues) > 0 {
		h.metrics.RecordGeneration("validation_failed", 0, len(req.Employees))
		h.validationFailed(w, r, issues)
		return
	}

	sched, err := scheduler.New(&req, scheduler.WithParameters(scheduler.Parameters{
		ContractTolerance:   h.config.Scheduler.ContractTolerance,
		LunchSplitThreshold: h.config.Scheduler.LunchSplitThreshold,
	}))
	if err != nil {
		h.metrics.RecordGeneration("error", 0, len(req.Employees))
		h.internalServerError(w, r, err)
		return
	}

	start := time.Now()
	result, err := sched.Generate()
	if err != nil {
		// 输出校验失败说明引擎自身存在 bug，按内部错误处理
		h.metrics.RecordGeneration("error", time.Since(start), len(req.Employees))
		h.internalServerError(w, r, err)
		return
	}

	h.metrics.RecordGeneration("success", time.Since(start), len(req.Employees))
	h.writeJSON(w, r, http.StatusOK, SuccessResponse{
		Success:  true,
		Message:  "自动排班成功",
		Planning: result.Planning,
		Metadata: &result.Metadata,
		Stats:    &result.Stats,
	})
}

// Healthz 是存活探针
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logInternalServerError(r, err)
	}
}
