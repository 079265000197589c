package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// 校验问题的代码，供调用方做机器判断，message 只用于展示
const (
	CodeYearTooEarly      = "year_too_early"
	CodeWeekNotInYear     = "week_not_in_year"
	CodeDuplicateEmployee = "duplicate_employee"
	CodeInvalidTimeRange  = "invalid_time_range"
	CodeInvalidDate       = "invalid_date"
	CodeDateOutOfWeek     = "date_out_of_week"
	CodeInvalidValue      = "invalid_value"
)

// ValidateGenerateRequest 对请求载荷做语义校验，一次性收集所有问题返回，
// 不在第一个问题处短路，调用方可以一轮修完整个载荷
// 结构性的问题（必填、范围）由 validator 的结构体标签负责，这里只做标签表达不了的部分
func ValidateGenerateRequest(req *domain.GenerateRequest, minYear int) []domain.Issue {
	var issues []domain.Issue

	if req.Year < minYear {
		issues = append(issues, domain.Issue{
			Field:   "year",
			Message: fmt.Sprintf("年份不能早于 %d", minYear),
			Code:    CodeYearTooEarly,
		})
	} else if req.WeekNumber >= 1 && req.WeekNumber > domain.ISOWeeksInYear(req.Year) {
		issues = append(issues, domain.Issue{
			Field:   "weekNumber",
			Message: fmt.Sprintf("%d 年没有第 %d 个 ISO 周", req.Year, req.WeekNumber),
			Code:    CodeWeekNotInYear,
		})
	}

	issues = append(issues, validateEmployees(req, minYear)...)
	issues = append(issues, validateConstraints(req.CompanyConstraints)...)

	return issues
}

func validateEmployees(req *domain.GenerateRequest, minYear int) []domain.Issue {
	var issues []domain.Issue

	// 例外日期只有在周本身合法时才能对照目标周检查
	weekValid := req.Year >= minYear &&
		req.WeekNumber >= 1 && req.WeekNumber <= domain.ISOWeeksInYear(req.Year)
	var weekStart time.Time
	if weekValid {
		weekStart = domain.ISOWeekStart(req.Year, req.WeekNumber)
	}

	seen := make(map[string]bool, len(req.Employees))
	for i, emp := range req.Employees {
		prefix := fmt.Sprintf("employees[%d]", i)

		if emp.ID != "" && seen[emp.ID] {
			issues = append(issues, domain.Issue{
				Field:   prefix + ".id",
				Message: fmt.Sprintf("员工 ID %q 重复", emp.ID),
				Code:    CodeDuplicateEmployee,
			})
		}
		seen[emp.ID] = true

		for j, exc := range emp.Exceptions {
			field := fmt.Sprintf("%s.exceptions[%d]", prefix, j)

			if !exc.Type.Valid() {
				issues = append(issues, domain.Issue{
					Field:   field + ".type",
					Message: fmt.Sprintf("例外类型 %q 无效", exc.Type),
					Code:    CodeInvalidValue,
				})
			}

			date, err := time.Parse("2006-01-02", exc.Date)
			if err != nil {
				issues = append(issues, domain.Issue{
					Field:   field + ".date",
					Message: fmt.Sprintf("日期 %q 的格式错误，应为 YYYY-MM-DD", exc.Date),
					Code:    CodeInvalidDate,
				})
				continue
			}

			if weekValid {
				offset := int(date.Sub(weekStart).Hours() / 24)
				if offset < 0 || offset > 6 {
					issues = append(issues, domain.Issue{
						Field:   field + ".date",
						Message: fmt.Sprintf("日期 %s 不在 %d 年第 %d 周内", exc.Date, req.Year, req.WeekNumber),
						Code:    CodeDateOutOfWeek,
					})
				}
			}
		}

		if emp.Preference != nil {
			for j, r := range emp.Preference.PreferredHours {
				if err := validateTimeRange(r); err != nil {
					issues = append(issues, domain.Issue{
						Field:   fmt.Sprintf("%s.preference.preferredHours[%d]", prefix, j),
						Message: err.Error(),
						Code:    CodeInvalidTimeRange,
					})
				}
			}
		}
	}

	return issues
}

func validateConstraints(c *domain.CompanyConstraints) []domain.Issue {
	if c == nil {
		return nil
	}

	var issues []domain.Issue

	for i, r := range c.OpenHours {
		if err := validateTimeRange(r); err != nil {
			issues = append(issues, domain.Issue{
				Field:   fmt.Sprintf("companyConstraints.openHours[%d]", i),
				Message: err.Error(),
				Code:    CodeInvalidTimeRange,
			})
		}
	}

	if c.MinEmployeesPerSlot < 0 {
		issues = append(issues, domain.Issue{
			Field:   "companyConstraints.minEmployeesPerSlot",
			Message: "每个时段的最低员工数不能为负数",
			Code:    CodeInvalidValue,
		})
	}
	if c.MaxHoursPerDay != nil && *c.MaxHoursPerDay <= 0 {
		issues = append(issues, domain.Issue{
			Field:   "companyConstraints.maxHoursPerDay",
			Message: "每日最大工时必须大于 0",
			Code:    CodeInvalidValue,
		})
	}
	if c.MinHoursPerDay != nil && *c.MinHoursPerDay <= 0 {
		issues = append(issues, domain.Issue{
			Field:   "companyConstraints.minHoursPerDay",
			Message: "每日最小工时必须大于 0",
			Code:    CodeInvalidValue,
		})
	}
	if c.MaxHoursPerDay != nil && c.MinHoursPerDay != nil && *c.MinHoursPerDay > *c.MaxHoursPerDay {
		issues = append(issues, domain.Issue{
			Field:   "companyConstraints.minHoursPerDay",
			Message: "每日最小工时不能大于每日最大工时",
			Code:    CodeInvalidValue,
		})
	}
	if c.LunchBreakDuration < 0 {
		issues = append(issues, domain.Issue{
			Field:   "companyConstraints.lunchBreakDuration",
			Message: "午休时长不能为负数",
			Code:    CodeInvalidValue,
		})
	}

	return issues
}

// validateTimeRange 检查 HH:MM-HH:MM 格式的时间段，且开始时间严格早于结束时间
func validateTimeRange(s string) error {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("时间段 %q 的格式错误，应为 HH:MM-HH:MM", s)
	}

	start, err := parseClockStrict(parts[0])
	if err != nil {
		return fmt.Errorf("时间段 %q 的开始时间格式错误", s)
	}
	end, err := parseClockStrict(parts[1])
	if err != nil {
		return fmt.Errorf("时间段 %q 的结束时间格式错误", s)
	}
	if start >= end {
		return fmt.Errorf("时间段 %q 的开始时间必须早于结束时间", s)
	}

	return nil
}

// parseClockStrict 解析严格的 HH:MM 格式，返回从零点开始的分钟数
// time.Parse 对个位数的小时比较宽容，这里额外要求两位数格式
func parseClockStrict(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("时间 %q 的格式错误", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
