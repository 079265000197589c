package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", requestIDFrom(r),
		"error", err,
	)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "服务器内部错误", http.StatusInternalServerError)
	}
}

// SuccessResponse 是生成成功时的响应体
type SuccessResponse struct {
	Success  bool                      `json:"success"`
	Message  string                    `json:"message"`
	Planning domain.GeneratedPlanning  `json:"planning"`
	Metadata *domain.PlanningMetadata  `json:"metadata"`
	Stats    *domain.PlanningStats     `json:"stats,omitempty"`
}

// ValidationFailedResponse 是输入校验失败时的响应体，一次性携带所有问题
type ValidationFailedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Issues  []domain.Issue `json:"issues"`
}

// ErrorResponse 是服务器内部错误时的响应体
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) validationFailed(w http.ResponseWriter, r *http.Request, issues []domain.Issue) {
	h.writeJSON(w, r, http.StatusBadRequest, ValidationFailedResponse{
		Success: false,
		Message: "请求载荷校验失败",
		Issues:  issues,
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: "服务器内部错误",
		Error:   err.Error(),
	})
}

// translateValidationErrors 把 validator 的结构体校验错误映射为字段级的问题列表
func (h *Handler) translateValidationErrors(err error) []domain.Issue {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.Issue{{
			Field:   "body",
			Message: err.Error(),
			Code:    "invalid_payload",
		}}
	}

	issues := make([]domain.Issue, 0, len(validationErrors))
	for _, e := range validationErrors {
		// Namespace 形如 GenerateRequest.employees[0].contractHoursPerWeek，
		// 去掉最外层的结构体名
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		issues = append(issues, domain.Issue{
			Field:   field,
			Message: e.Translate(h.translator),
			Code:    e.Tag(),
		})
	}

	return issues
}
