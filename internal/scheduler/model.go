package scheduler

import "github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"

// availability 表示某个员工在某一天的可用性分类
type availability int

const (
	availOpen    availability = iota
	availReduced              // reduced 类型的例外：当天工时上限减半
	availBlocked              // 休息日或阻止类型的例外，当天完全不排班
)

// window 表示一天内的一段时间，用从零点开始的分钟数表示，避免浮点误差
type window struct {
	start int
	end   int
}

func (w window) minutes() int {
	return w.end - w.start
}

func (w window) overlaps(other window) bool {
	return w.start < other.end && other.start < w.end
}

// blockList 表示某个员工一周的排班块，键为星期
type blockList map[domain.Weekday][]window

// slotKey 标识一个 (星期, 营业窗口)，用于跟踪每个窗口已分配的员工数量
// 后续员工的候选排序会优先补足人数不达标的窗口
type slotKey struct {
	day   domain.Weekday
	start int
	end   int
}

// candidate 表示某个员工的一个候选排班位置
type candidate struct {
	day        domain.Weekday
	win        window
	rank       int  // 越小越优先，见 buildCandidates
	underFloor bool // 该窗口当前人数低于最低要求
	prefStart  int  // 与偏好时段交集的起点（分钟），-1 表示没有交集
}

// Parameters 是排班引擎的可调参数
type Parameters struct {
	ContractTolerance   float64 // 判定"完整排班"时允许的工时偏差（小时）
	LunchSplitThreshold float64 // 超过该时长（小时）的连续排班块需要插入午休
}
