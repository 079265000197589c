package scheduler

import (
	"fmt"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// checkCoverage 检查每个营业窗口的在岗人数是否达到 minEmployeesPerSlot
// 人数不足只产生警告而不是错误：引擎总是返回尽力而为的排班结果，
// 是否接受由调用方根据警告自行决定
func (s *Scheduler) checkCoverage(blocks map[string]blockList) []domain.Warning {
	if s.constraints.MinEmployeesPerSlot <= 0 {
		return nil
	}

	var warnings []domain.Warning

	for _, day := range domain.AllWeekdays() {
		for _, win := range s.windows[day] {
			covered := 0
			for _, emp := range s.req.Employees {
				for _, b := range blocks[emp.ID][day] {
					if b.overlaps(win) {
						covered++
						break
					}
				}
			}

			if covered < s.constraints.MinEmployeesPerSlot {
				warnings = append(warnings, domain.Warning{
					Code: domain.WarningUnderCoverage,
					Message: fmt.Sprintf("%s 的 %s 时段只有 %d 名员工在岗，低于最低要求 %d 名",
						day, formatRange(win), covered, s.constraints.MinEmployeesPerSlot),
					Day:    day,
					Window: formatRange(win),
				})
			}
		}
	}

	return warnings
}
