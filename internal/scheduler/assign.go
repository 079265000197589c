package scheduler

import (
	"fmt"
	"sort"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// assign 为每个员工贪心地分配排班块
//
// 员工按确定性的顺序依次处理（缺省为输入顺序，可通过 WithOrderStrategy 注入
// 其他比较器），排在前面的员工优先挑选稀缺的偏好时段。
// 对单个员工：
//  1. 构造候选 (星期, 窗口) 列表并按偏好排序，见 buildCandidates
//  2. 依次从排名最高的候选中切出连续的排班块，直到累计工时达到合同工时，
//     或者再也没有不违反每日上限的候选为止
//  3. 未能达到合同工时不是错误，只记为警告
func (s *Scheduler) assign() (map[string]blockList, []domain.Warning) {
	blocks := make(map[string]blockList, len(s.req.Employees))
	warnings := make([]domain.Warning, 0)

	order := make([]int, len(s.req.Employees))
	for i := range order {
		order[i] = i
	}
	if s.orderLess != nil {
		sort.SliceStable(order, func(i, j int) bool {
			return s.orderLess(s.req.Employees[order[i]], s.req.Employees[order[j]])
		})
	}

	for _, idx := range order {
		emp := &s.req.Employees[idx]
		empBlocks := s.assignEmployee(emp)
		blocks[emp.ID] = empBlocks

		assigned := 0
		for _, dayBlocks := range empBlocks {
			for _, b := range dayBlocks {
				assigned += b.minutes()
			}
		}

		switch {
		case assigned == 0:
			warnings = append(warnings, domain.Warning{
				Code:       domain.WarningEmptySchedule,
				Message:    fmt.Sprintf("员工 %s 没有任何可用的排班位置", emp.ID),
				EmployeeID: emp.ID,
			})
		case assigned < hoursToMinutes(emp.ContractHoursPerWeek):
			warnings = append(warnings, domain.Warning{
				Code: domain.WarningUnderContractHours,
				Message: fmt.Sprintf("员工 %s 的实际排班工时 %.2f 小时未达到合同工时 %.2f 小时",
					emp.ID, minutesToHours(assigned), emp.ContractHoursPerWeek),
				EmployeeID: emp.ID,
			})
		}
	}

	return blocks, warnings
}

// assignEmployee 为单个员工分配一周的排班块
func (s *Scheduler) assignEmployee(emp *domain.Employee) blockList {
	empBlocks := make(blockList)

	remaining := hoursToMinutes(emp.ContractHoursPerWeek)
	assignedPerDay := make(map[domain.Weekday]int)
	blocksPerDay := make(map[domain.Weekday]int)

	allowSplit := emp.Preference != nil && emp.Preference.AllowSplitShifts

	minPerDay := 0
	if s.constraints.MinHoursPerDay != nil {
		minPerDay = hoursToMinutes(*s.constraints.MinHoursPerDay)
	}

	// 候选数量最多为 7 * 每天窗口数，因此单个员工的分配是线性有界的，
	// 不会因为病态输入而超出调用方的超时预算
	for _, c := range s.buildCandidates(emp) {
		if remaining <= 0 {
			break
		}
		if !allowSplit && blocksPerDay[c.day] > 0 {
			continue
		}

		reduced := s.availabilityOn(emp.ID, c.day) == availReduced
		allowance := s.dailyCapMinutes(c.day, reduced) - assignedPerDay[c.day]
		if allowance <= 0 {
			continue
		}

		length := c.win.minutes()
		if allowance < length {
			length = allowance
		}
		if remaining < length {
			length = remaining
		}
		if length <= 0 {
			continue
		}
		// 当天的第一个排班块必须满足每日工时下限
		if assignedPerDay[c.day] == 0 && length < minPerDay {
			continue
		}

		// 有偏好时段交集时，把排班块对齐到交集的起点
		start := c.win.start
		if c.prefStart >= 0 {
			start = c.prefStart
		}
		if start+length > c.win.end {
			start = c.win.end - length
		}

		empBlocks[c.day] = append(empBlocks[c.day], window{start: start, end: start + length})
		remaining -= length
		assignedPerDay[c.day] += length
		blocksPerDay[c.day]++
		s.loads[slotKey{day: c.day, start: c.win.start, end: c.win.end}]++
	}

	return empBlocks
}

// buildCandidates 为一个员工构造排好序的候选 (星期, 窗口) 列表
//
// 排名规则（越小越优先）：
//   - 0: 偏好日，且窗口完整覆盖某个偏好时段（或被偏好时段完整覆盖）
//   - 1: 偏好日，且窗口与某个偏好时段部分相交
//     （规范未完全确定部分相交的处理，这里的策略是：降级但仍然有效）
//   - 2: 偏好日，但没有匹配的偏好时段
//   - 3: 其余的营业日
//
// 只声明了偏好时段而没有偏好日时，时段匹配在所有营业日上生效，整体降一级。
// 同一排名内，人数低于下限的窗口优先，然后按星期和窗口起点排序，保证确定性。
// 被 Blocked 的天完全不参与
func (s *Scheduler) buildCandidates(emp *domain.Employee) []candidate {
	var prefDays []domain.Weekday
	var prefRanges []window

	if emp.Preference != nil {
		prefDays = emp.Preference.PreferredDays
		for _, r := range emp.Preference.PreferredHours {
			w, err := parseRange(r)
			if err != nil {
				// 输入校验已经拦截了格式错误的时段，这里直接忽略
				continue
			}
			prefRanges = append(prefRanges, w)
		}
	}

	candidates := make([]candidate, 0)

	for _, day := range domain.AllWeekdays() {
		if s.availabilityOn(emp.ID, day) == availBlocked {
			continue
		}

		for _, win := range s.windows[day] {
			c := candidate{day: day, win: win, prefStart: -1}

			full, partial, prefStart := matchPreferredHours(win, prefRanges)

			switch {
			case len(prefDays) > 0 && containsDay(prefDays, day):
				switch {
				case full:
					c.rank = 0
				case partial:
					c.rank = 1
				default:
					c.rank = 2
				}
			case len(prefDays) == 0 && len(prefRanges) > 0:
				switch {
				case full:
					c.rank = 1
				case partial:
					c.rank = 2
				default:
					c.rank = 3
				}
			default:
				c.rank = 3
			}

			if full || partial {
				c.prefStart = prefStart
			}

			if s.constraints.MinEmployeesPerSlot > 0 {
				key := slotKey{day: day, start: win.start, end: win.end}
				c.underFloor = s.loads[key] < s.constraints.MinEmployeesPerSlot
			}

			candidates = append(candidates, c)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.underFloor != b.underFloor {
			return a.underFloor
		}
		if a.day != b.day {
			return a.day < b.day
		}
		return a.win.start < b.win.start
	})

	return candidates
}

// matchPreferredHours 判断窗口与偏好时段的重叠程度，并返回交集的起点
// full 表示窗口完整覆盖某个偏好时段（或反之），partial 表示只有部分相交
func matchPreferredHours(win window, prefRanges []window) (full bool, partial bool, prefStart int) {
	prefStart = -1

	for _, r := range prefRanges {
		if !win.overlaps(r) {
			continue
		}

		contained := (r.start >= win.start && r.end <= win.end) || (win.start >= r.start && win.end <= r.end)
		start := r.start
		if win.start > start {
			start = win.start
		}

		if contained {
			if !full || start < prefStart {
				prefStart = start
			}
			full = true
		} else if !full {
			partial = true
			if prefStart == -1 || start < prefStart {
				prefStart = start
			}
		}
	}

	return full, partial, prefStart
}
