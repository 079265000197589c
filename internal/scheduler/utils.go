package scheduler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// parseClock 将 HH:MM 格式的时间解析为从零点开始的分钟数
// time.Parse 对个位数的小时比较宽容，这里要求严格的两位数格式
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("时间 %q 的格式错误，应为 HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("时间 %q 的格式错误，应为 HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// parseRange 将 HH:MM-HH:MM 格式的时间段解析为 window
func parseRange(s string) (window, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return window{}, fmt.Errorf("时间段 %q 的格式错误，应为 HH:MM-HH:MM", s)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return window{}, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return window{}, err
	}
	if start >= end {
		return window{}, fmt.Errorf("时间段 %q 的开始时间必须早于结束时间", s)
	}

	return window{start: start, end: end}, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func formatRange(w window) string {
	return formatClock(w.start) + "-" + formatClock(w.end)
}

// minutesToHours 将分钟数换算为小时，保留两位小数
func minutesToHours(m int) float64 {
	return math.Round(float64(m)/60*100) / 100
}

// hoursToMinutes 将小时换算为分钟数
func hoursToMinutes(h float64) int {
	return int(math.Round(h * 60))
}

func containsDay(days []domain.Weekday, day domain.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
