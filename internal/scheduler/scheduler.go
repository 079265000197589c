package scheduler

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

// 缺省参数
const (
	DefaultContractTolerance   = 0.5 // 小时
	DefaultLunchSplitThreshold = 6.0 // 小时
)

// OrderStrategy 决定员工的处理顺序
// 处理顺序会影响谁优先挑选稀缺的偏好时段，因此必须是确定性的
// 返回 nil 比较器时保持输入顺序（缺省策略）
type OrderStrategy func(a, b domain.Employee) bool

// Scheduler 根据一次请求的载荷生成一周的排班表
// 整个计算是纯函数式的：不依赖请求之外的任何状态，也不产生副作用，
// 同一载荷总是生成相同的结果
type Scheduler struct {
	req         *domain.GenerateRequest
	constraints domain.CompanyConstraints // 已填充缺省值
	parameters  Parameters
	orderLess   OrderStrategy
	weekStart   time.Time // 目标 ISO 周的周一

	windows map[domain.Weekday][]window                // 每天的营业窗口，按开始时间排序且互不重叠
	avail   map[string]map[domain.Weekday]availability // 员工 ID -> 星期 -> 可用性
	loads   map[slotKey]int                            // 每个 (星期, 窗口) 已分配的员工数
}

// Result 是一次排班生成的完整输出
type Result struct {
	Planning domain.GeneratedPlanning
	Metadata domain.PlanningMetadata
	Stats    domain.PlanningStats
}

type Option func(*Scheduler)

func WithParameters(p Parameters) Option {
	return func(s *Scheduler) {
		if p.ContractTolerance > 0 {
			s.parameters.ContractTolerance = p.ContractTolerance
		}
		if p.LunchSplitThreshold > 0 {
			s.parameters.LunchSplitThreshold = p.LunchSplitThreshold
		}
	}
}

func WithOrderStrategy(less OrderStrategy) Option {
	return func(s *Scheduler) {
		s.orderLess = less
	}
}

// New 构造一个排班器，载荷应当已经通过输入校验
func New(req *domain.GenerateRequest, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		req:         req,
		constraints: req.CompanyConstraints.Normalize(),
		parameters: Parameters{
			ContractTolerance:   DefaultContractTolerance,
			LunchSplitThreshold: DefaultLunchSplitThreshold,
		},
		weekStart: domain.ISOWeekStart(req.Year, req.WeekNumber),
		windows:   make(map[domain.Weekday][]window),
		avail:     make(map[string]map[domain.Weekday]availability),
		loads:     make(map[slotKey]int),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.buildWindows(); err != nil {
		return nil, err
	}
	if err := s.resolveAvailability(); err != nil {
		return nil, err
	}

	return s, nil
}

// Generate 按固定的流水线生成排班结果：
// 分配 -> 午休插入 -> 人数覆盖检查 -> 统计 -> 输出校验
// 输出校验失败说明引擎自身存在 bug，此时返回错误而不是残缺的结果
func (s *Scheduler) Generate() (*Result, error) {
	blocks, warnings := s.assign()

	s.injectLunchBreaks(blocks)

	warnings = append(warnings, s.checkCoverage(blocks)...)

	planning := s.formatPlanning(blocks)
	stats := s.calcStats(blocks)

	if err := ValidatePlanning(planning, s.req.Employees); err != nil {
		return nil, fmt.Errorf("生成的排班结果未通过输出校验: %w", err)
	}

	return &Result{
		Planning: planning,
		Metadata: domain.PlanningMetadata{
			WeekNumber:    s.req.WeekNumber,
			Year:          s.req.Year,
			EmployeeCount: len(s.req.Employees),
			GeneratedAt:   time.Now().UTC(),
			Warnings:      warnings,
		},
		Stats: stats,
	}, nil
}

// formatPlanning 将内部的分钟表示转换为对外的 HH:MM 表示
// 每个员工都包含一周七天的键，没有排班的天对应空列表
func (s *Scheduler) formatPlanning(blocks map[string]blockList) domain.GeneratedPlanning {
	planning := make(domain.GeneratedPlanning, len(s.req.Employees))

	for _, emp := range s.req.Employees {
		ds := make(domain.DaySchedule, 7)
		for _, day := range domain.AllWeekdays() {
			slots := make([]domain.TimeSlot, 0, len(blocks[emp.ID][day]))
			for _, b := range sortedBlocks(blocks[emp.ID][day]) {
				slots = append(slots, domain.TimeSlot{
					Start: formatClock(b.start),
					End:   formatClock(b.end),
				})
			}
			ds[day] = slots
		}
		planning[emp.ID] = ds
	}

	return planning
}
