package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 记录排班生成接口的 Prometheus 指标
type Metrics struct {
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	employees   prometheus.Histogram
}

// New 在给定的 Registerer 上用指定的命名空间注册排班指标
// reg 为 nil 时使用缺省的 Registerer；指标已经注册过时复用已有的收集器
func New(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "自动排班请求的总数，按结果分类",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "单次排班生成的耗时",
		Buckets:   prometheus.DefBuckets,
	})
	employees := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_employees",
		Help:      "单次排班请求中的员工数量",
		Buckets:   []float64{1, 5, 10, 20, 50, 100},
	})

	if err := reg.Register(generations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			generations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(employees); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			employees = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &Metrics{
		generations: generations,
		duration:    duration,
		employees:   employees,
	}, nil
}

// RecordGeneration 记录一次排班生成的结果
// outcome 取值为 success / validation_failed / error
func (m *Metrics) RecordGeneration(outcome string, elapsed time.Duration, employeeCount int) {
	m.generations.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.duration.Observe(elapsed.Seconds())
		m.employees.Observe(float64(employeeCount))
	}
}
