package domain

import "time"

// TimeSlot 表示某个员工在某一天内的一段连续排班
type TimeSlot struct {
	Start string `json:"start"` // 格式为 HH:MM
	End   string `json:"end"`   // 格式为 HH:MM，必须大于 Start
}

// DaySchedule 表示一个员工一周的排班，键为星期，值为当天按开始时间排序且互不重叠的时段
type DaySchedule map[Weekday][]TimeSlot

// GeneratedPlanning 表示整个排班结果，键为员工 ID
// 请求中的每个员工都必须出现在其中，即使其一周的时段全部为空
// （全空表示"无法排班"，由输出校验以警告而非错误的形式反映）
type GeneratedPlanning map[string]DaySchedule

// 警告代码
const (
	WarningUnderCoverage      = "under_coverage"
	WarningUnderContractHours = "under_contract_hours"
	WarningEmptySchedule      = "empty_schedule"
)

// Warning 表示排班过程中产生的非致命问题
// 这些信息作为结构化数据返回给调用方，而不只是日志
type Warning struct {
	Code       string  `json:"code"`
	Message    string  `json:"message"`
	EmployeeID string  `json:"employeeId,omitempty"`
	Day        Weekday `json:"day,omitempty"`
	Window     string  `json:"window,omitempty"` // 格式为 HH:MM-HH:MM
}

type PlanningMetadata struct {
	WeekNumber    int       `json:"weekNumber"`
	Year          int       `json:"year"`
	EmployeeCount int       `json:"employeeCount"`
	GeneratedAt   time.Time `json:"generatedAt"`
	Warnings      []Warning `json:"warnings"`
}

type PlanningStats struct {
	TotalHours              float64 `json:"totalHours"`
	AverageHoursPerEmployee float64 `json:"averageHoursPerEmployee"`
	FullyScheduledCount     int     `json:"fullyScheduledCount"` // 总工时与合同工时之差在容差范围内的员工数量
	ActiveDays              int     `json:"activeDays"`          // 至少有一个时段的天数
	FairnessScore           float64 `json:"fairnessScore"`       // 0~100，工时分布越均匀越接近 100
}

// Issue 表示请求载荷中某个字段的校验问题
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// GenerateRequest 是自动排班接口的请求载荷
type GenerateRequest struct {
	WeekNumber         int                 `json:"weekNumber" validate:"required,min=1,max=53"`
	Year               int                 `json:"year" validate:"required"`
	Employees          []Employee          `json:"employees" validate:"required,min=1,dive"`
	CompanyConstraints *CompanyConstraints `json:"companyConstraints,omitempty"`
}
