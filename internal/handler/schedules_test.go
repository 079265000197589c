package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/config"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/metrics"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Scheduler.MinYear = 2020
	cfg.Scheduler.ContractTolerance = 0.5
	cfg.Scheduler.LunchSplitThreshold = 6
	cfg.Metrics.Namespace = "planning"

	// 每个测试用独立的 Registry，避免指标重复注册
	m, err := metrics.New(prometheus.NewRegistry(), cfg.Metrics.Namespace)
	require.NoError(t, err)

	h, err := NewHandler(cfg, m)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func postJSON(t *testing.T, h *Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	return rec
}

func decodeIssues(t *testing.T, rec *httptest.ResponseRecorder) []domain.Issue {
	t.Helper()

	var resp ValidationFailedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	return resp.Issues
}

func TestAutoGenerateSchedule_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/schedules/auto-generate", `{"weekNumber": 10,`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	issues := decodeIssues(t, rec)
	require.Len(t, issues, 1)
	assert.Equal(t, "invalid_json", issues[0].Code)
}

func TestAutoGenerateSchedule_StructValidation(t *testing.T) {
	h := newTestHandler(t)

	// 缺少 weekNumber，员工的合同工时为 0
	rec := postJSON(t, h, "/schedules/auto-generate", `{
		"year": 2026,
		"employees": [{"id": "emp1", "contractHoursPerWeek": 0}]
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	issues := decodeIssues(t, rec)

	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	assert.Contains(t, fields, "weekNumber")
	assert.Contains(t, fields, "employees[0].contractHoursPerWeek")
}

func TestAutoGenerateSchedule_CollectsAllIssues(t *testing.T) {
	h := newTestHandler(t)

	// 结构性问题（员工 ID 缺失）和语义问题（ID 重复、时间段格式错误）一起返回
	rec := postJSON(t, h, "/schedules/auto-generate", `{
		"weekNumber": 10,
		"year": 2026,
		"employees": [
			{"id": "emp1", "contractHoursPerWeek": 35},
			{"id": "emp1", "contractHoursPerWeek": 20},
			{"contractHoursPerWeek": 10}
		],
		"companyConstraints": {"openHours": ["18:00-08:00"]}
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	issues := decodeIssues(t, rec)

	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	assert.Contains(t, codes, "required")
	assert.Contains(t, codes, "duplicate_employee")
	assert.Contains(t, codes, "invalid_time_range")
}

func TestAutoGenerateSchedule_Success(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h, "/schedules/auto-generate", `{
		"weekNumber": 10,
		"year": 2026,
		"employees": [
			{"id": "emp1", "name": "张伟", "contractHoursPerWeek": 40},
			{
				"id": "emp2",
				"name": "李芳",
				"contractHoursPerWeek": 20,
				"restDay": "sunday",
				"exceptions": [{"date": "2026-03-04", "type": "vacation"}],
				"preference": {"preferredDays": ["monday", "tuesday"]}
			}
		],
		"companyConstraints": {
			"openDays": ["monday", "tuesday", "wednesday", "thursday", "friday"],
			"openHours": ["08:00-18:00"],
			"mandatoryLunchBreak": true
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Planning, "emp1")
	assert.Contains(t, resp.Planning, "emp2")

	require.NotNil(t, resp.Metadata)
	assert.Equal(t, 10, resp.Metadata.WeekNumber)
	assert.Equal(t, 2026, resp.Metadata.Year)
	assert.Equal(t, 2, resp.Metadata.EmployeeCount)

	require.NotNil(t, resp.Stats)
	assert.Greater(t, resp.Stats.TotalHours, 0.0)

	// 周三休假，emp2 当天必须为空
	assert.Empty(t, resp.Planning["emp2"][domain.Wednesday])
	// 每个员工都带有完整的 7 天
	for _, ds := range resp.Planning {
		assert.Len(t, ds, 7)
	}
}

func TestAutoGenerateSchedule_RequestID(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, "test-id-123", rec.Header().Get("X-Request-ID"))

	// 未提供时由服务端生成
	rec = postJSON(t, h, "/schedules/auto-generate", `{}`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
