package domain

// 公司约束缺省值
const (
	DefaultOpenHours          = "08:00-18:00"
	DefaultLunchBreakDuration = 60 // 分钟
)

// CompanyConstraints 表示公司级别的排班约束，所有字段都是可选的
// 缺省值见 Normalize
type CompanyConstraints struct {
	OpenDays            []Weekday `json:"openDays,omitempty"`
	OpenHours           []string  `json:"openHours,omitempty"` // 格式为 HH:MM-HH:MM，每个营业日共用
	MinEmployeesPerSlot int       `json:"minEmployeesPerSlot,omitempty"`
	MaxHoursPerDay      *float64  `json:"maxHoursPerDay,omitempty"`
	MinHoursPerDay      *float64  `json:"minHoursPerDay,omitempty"`
	MandatoryLunchBreak bool      `json:"mandatoryLunchBreak,omitempty"`
	LunchBreakDuration  int       `json:"lunchBreakDuration,omitempty"` // 分钟
}

// Normalize 返回填充了缺省值的约束副本：
//   - openDays 缺省为周一到周五
//   - openHours 缺省为 08:00-18:00
//   - minEmployeesPerSlot 缺省为 0（不设人数下限）
//   - maxHoursPerDay / minHoursPerDay 缺省为 nil（不设每日工时界限）
//   - 开启强制午休但未指定时长时，缺省为 60 分钟
//
// 接收者可以为 nil，此时返回全缺省的约束
func (c *CompanyConstraints) Normalize() CompanyConstraints {
	normalized := CompanyConstraints{}
	if c != nil {
		normalized = *c
	}

	if len(normalized.OpenDays) == 0 {
		normalized.OpenDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	}
	if len(normalized.OpenHours) == 0 {
		normalized.OpenHours = []string{DefaultOpenHours}
	}
	if normalized.MandatoryLunchBreak && normalized.LunchBreakDuration <= 0 {
		normalized.LunchBreakDuration = DefaultLunchBreakDuration
	}

	return normalized
}

// IsOpenOn 判断公司在某一天是否营业
func (c CompanyConstraints) IsOpenOn(day Weekday) bool {
	for _, d := range c.OpenDays {
		if d == day {
			return true
		}
	}
	return false
}
