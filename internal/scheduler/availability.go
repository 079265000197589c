package scheduler

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// resolveAvailability 为每个员工计算一周七天的可用性分类
// 这是一个纯查表操作，只由员工自身的休息日和例外列表决定，与其他员工无关
// 同一天既有例外又是休息日时，按 Blocked 处理（两者都是排除性的）
func (s *Scheduler) resolveAvailability() error {
	for _, emp := range s.req.Employees {
		days := make(map[domain.Weekday]availability, 7)

		if emp.RestDay != nil {
			if !emp.RestDay.Valid() {
				return fmt.Errorf("员工 %s 的休息日无效", emp.ID)
			}
			days[*emp.RestDay] = availBlocked
		}

		for _, exc := range emp.Exceptions {
			date, err := time.Parse("2006-01-02", exc.Date)
			if err != nil {
				return fmt.Errorf("员工 %s 的例外日期 %q 格式错误: %w", emp.ID, exc.Date, err)
			}

			offset := int(date.Sub(s.weekStart).Hours() / 24)
			if offset < 0 || offset > 6 {
				return fmt.Errorf("员工 %s 的例外日期 %s 不在目标周内", emp.ID, exc.Date)
			}
			day := domain.Weekday(offset + 1)

			switch {
			case exc.Type.Blocking():
				days[day] = availBlocked
			case exc.Type == domain.ExceptionReduced:
				// Blocked 优先于 Reduced
				if days[day] != availBlocked {
					days[day] = availReduced
				}
			default:
				return fmt.Errorf("员工 %s 的例外类型 %q 无效", emp.ID, exc.Type)
			}
		}

		s.avail[emp.ID] = days
	}

	return nil
}

// availabilityOn 返回某个员工在某一天的可用性，未记录的天视为 Open
func (s *Scheduler) availabilityOn(employeeID string, day domain.Weekday) availability {
	return s.avail[employeeID][day]
}
