package domain

import (
	"fmt"
	"time"
)

// Weekday 表示一周中的某一天，采用 ISO 编号（周一为 1，周日为 7）
// 内部表示与语言无关，展示层如需本地化（如法语、中文）自行转换
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// AllWeekdays 按周一到周日的顺序返回所有的 Weekday
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday 将小写英文名解析为 Weekday
func ParseWeekday(s string) (Weekday, error) {
	for day := Monday; day <= Sunday; day++ {
		if weekdayNames[day] == s {
			return day, nil
		}
	}
	return 0, fmt.Errorf("无效的星期名: %q", s)
}

// MarshalText 实现 encoding.TextMarshaler，使 Weekday 可以作为 JSON 对象的键
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("无效的星期: %d", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	day, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// ISOWeekStart 返回指定 ISO 周的周一（UTC 零点）
// 依据 ISO 8601：1 月 4 日总是落在第 1 周
func ISOWeekStart(year int, week int) time.Time {
	t := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
	return t.AddDate(0, 0, (week-1)*7)
}

// ISOWeeksInYear 返回指定年份的 ISO 周数（52 或 53）
func ISOWeeksInYear(year int) int {
	// 12 月 28 日总是落在当年的最后一个 ISO 周
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}
