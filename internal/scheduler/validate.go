package scheduler

import (
	"fmt"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// ValidatePlanning 对生成的排班结果做结构性校验：
//   - 请求中的每个员工都必须出现（时段列表可以为空）
//   - 每个员工都包含一周七天的键
//   - 每个时段的开始和结束都是合法的 HH:MM 且开始早于结束
//   - 同一员工同一天的时段互不重叠
//
// 校验失败说明是引擎自身的 bug 而不是数据问题，调用方应按内部错误处理
func ValidatePlanning(planning domain.GeneratedPlanning, employees []domain.Employee) error {
	for _, emp := range employees {
		ds, exists := planning[emp.ID]
		if !exists {
			return fmt.Errorf("排班结果中缺少员工 %s", emp.ID)
		}

		for _, day := range domain.AllWeekdays() {
			slots, exists := ds[day]
			if !exists {
				return fmt.Errorf("员工 %s 的排班结果中缺少 %s", emp.ID, day)
			}

			prevEnd := -1
			for i, slot := range slots {
				start, err := parseClock(slot.Start)
				if err != nil {
					return fmt.Errorf("员工 %s 在 %s 的第 %d 个时段: %w", emp.ID, day, i+1, err)
				}
				end, err := parseClock(slot.End)
				if err != nil {
					return fmt.Errorf("员工 %s 在 %s 的第 %d 个时段: %w", emp.ID, day, i+1, err)
				}
				if start >= end {
					return fmt.Errorf("员工 %s 在 %s 的第 %d 个时段的开始时间不早于结束时间", emp.ID, day, i+1)
				}
				if start < prevEnd {
					return fmt.Errorf("员工 %s 在 %s 的第 %d 个时段与前一个时段重叠", emp.ID, day, i+1)
				}
				prevEnd = end
			}
		}
	}

	return nil
}
