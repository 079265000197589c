package domain

// ExceptionType 表示员工的例外类型
type ExceptionType string

const (
	ExceptionVacation    ExceptionType = "vacation"
	ExceptionSick        ExceptionType = "sick"
	ExceptionUnavailable ExceptionType = "unavailable"
	ExceptionTraining    ExceptionType = "training"
	ExceptionReduced     ExceptionType = "reduced"
)

func (t ExceptionType) Valid() bool {
	switch t {
	case ExceptionVacation, ExceptionSick, ExceptionUnavailable, ExceptionTraining, ExceptionReduced:
		return true
	}
	return false
}

// Blocking 表示该类型的例外是否会完全阻止当天的排班
// reduced 只是降低当天的工时上限，不属于阻止类型
func (t ExceptionType) Blocking() bool {
	return t.Valid() && t != ExceptionReduced
}

// Exception 表示员工在目标周内某一天的例外
type Exception struct {
	Date string        `json:"date"` // 格式为 2006-01-02，必须落在目标周内
	Type ExceptionType `json:"type"`
}

// Preference 表示员工的软性排班偏好
// 指针为 nil 表示没有任何偏好，与"偏好存在但列表为空"是两种不同的状态
type Preference struct {
	PreferredDays    []Weekday `json:"preferredDays"`
	PreferredHours   []string  `json:"preferredHours"` // 格式为 HH:MM-HH:MM
	AllowSplitShifts bool      `json:"allowSplitShifts"`
}

type Employee struct {
	ID                   string      `json:"id" validate:"required"`
	Name                 string      `json:"name"`
	ContractHoursPerWeek float64     `json:"contractHoursPerWeek" validate:"required,gt=0"`
	RestDay              *Weekday    `json:"restDay,omitempty"` // 每周固定的休息日，当天永远不排班
	Exceptions           []Exception `json:"exceptions,omitempty"`
	Preference           *Preference `json:"preference,omitempty"`
}
