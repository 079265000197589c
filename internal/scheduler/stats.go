package scheduler

import (
	"math"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// calcStats 汇总最终排班结果的统计信息
func (s *Scheduler) calcStats(blocks map[string]blockList) domain.PlanningStats {
	totalMinutes := 0
	perEmployeeHours := make([]float64, 0, len(s.req.Employees))
	activeDays := make(map[domain.Weekday]bool)

	fullyScheduled := 0
	for _, emp := range s.req.Employees {
		empMinutes := 0
		for day, dayBlocks := range blocks[emp.ID] {
			for _, b := range dayBlocks {
				empMinutes += b.minutes()
				activeDays[day] = true
			}
		}

		totalMinutes += empMinutes
		hours := float64(empMinutes) / 60
		perEmployeeHours = append(perEmployeeHours, hours)

		if math.Abs(hours-emp.ContractHoursPerWeek) <= s.parameters.ContractTolerance {
			fullyScheduled++
		}
	}

	average := 0.0
	if len(s.req.Employees) > 0 {
		average = math.Round(float64(totalMinutes)/float64(len(s.req.Employees))/60*100) / 100
	}

	return domain.PlanningStats{
		TotalHours:              minutesToHours(totalMinutes),
		AverageHoursPerEmployee: average,
		FullyScheduledCount:     fullyScheduled,
		ActiveDays:              len(activeDays),
		FairnessScore:           fairnessScore(perEmployeeHours),
	}
}

// fairnessScore 把工时分布的离散程度映射为 0~100 的分数
// 标准差为 0 时是 100 分（完全均匀），标准差不小于均值时是 0 分
func fairnessScore(hours []float64) float64 {
	if len(hours) < 2 {
		return 100
	}

	mean := stat.Mean(hours, nil)
	if mean == 0 {
		// 所有人都是 0 工时，同样视为完全均匀
		return 100
	}

	score := (1 - stat.StdDev(hours, nil)/mean) * 100
	if score < 0 {
		return 0
	}
	return math.Round(score*100) / 100
}

// CalculateTotalHours 从最终排班结果中累加所有时段的时长（小时，两位小数）
// 与统计信息中的 TotalHours 互为校验
func CalculateTotalHours(planning domain.GeneratedPlanning) float64 {
	total := 0
	for _, ds := range planning {
		for _, slots := range ds {
			for _, slot := range slots {
				start, err := parseClock(slot.Start)
				if err != nil {
					continue
				}
				end, err := parseClock(slot.End)
				if err != nil {
					continue
				}
				total += end - start
			}
		}
	}
	return minutesToHours(total)
}
