package scheduler

import (
	"sort"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// buildWindows 把公司约束中的 openDays/openHours 展开为每天可分配的时间窗口
// 不营业的天没有任何窗口，任何人当天都无法被排班
// 同一天的多个窗口（例如午间闭店造成的分段营业）互不相交，
// 分配引擎会把它们当作彼此独立的可分配范围
func (s *Scheduler) buildWindows() error {
	parsed := make([]window, 0, len(s.constraints.OpenHours))
	for _, r := range s.constraints.OpenHours {
		w, err := parseRange(r)
		if err != nil {
			return err
		}
		parsed = append(parsed, w)
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].start < parsed[j].start
	})

	// 合并相交的窗口，保证引擎只会看到互不相交的范围
	merged := make([]window, 0, len(parsed))
	for _, w := range parsed {
		if n := len(merged); n > 0 && w.start <= merged[n-1].end {
			if w.end > merged[n-1].end {
				merged[n-1].end = w.end
			}
			continue
		}
		merged = append(merged, w)
	}

	for _, day := range domain.AllWeekdays() {
		if s.constraints.IsOpenOn(day) {
			s.windows[day] = merged
		}
	}

	return nil
}

// dailyCapMinutes 返回某一天允许分配给单个员工的工时上限（分钟）
// 没有配置每日上限时，上限就是当天全部窗口的总时长
// Reduced 类型的例外把当天的上限减半
func (s *Scheduler) dailyCapMinutes(day domain.Weekday, reduced bool) int {
	total := 0
	for _, w := range s.windows[day] {
		total += w.minutes()
	}

	if s.constraints.MaxHoursPerDay != nil {
		if m := hoursToMinutes(*s.constraints.MaxHoursPerDay); m < total {
			total = m
		}
	}

	if reduced {
		total /= 2
	}

	return total
}

func sortedBlocks(blocks []window) []window {
	out := append([]window(nil), blocks...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].start < out[j].start
	})
	return out
}
