package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/utils"
)

// 生成一份随机的自动排班请求载荷并输出到标准输出，用于手工测试接口
func main() {
	var year int
	var week int
	var n int

	now := time.Now()
	defaultYear, defaultWeek := now.ISOWeek()

	flag.IntVar(&year, "year", defaultYear, "目标年份")
	flag.IntVar(&week, "week", defaultWeek, "目标 ISO 周")
	flag.IntVar(&n, "n", 5, "要生成的员工数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if n <= 0 {
		logger.Error("请输入合法的员工数量")
		os.Exit(1)
	}
	if week < 1 || week > 53 {
		logger.Error("请输入合法的 ISO 周", slog.Int("week", week))
		os.Exit(1)
	}

	req := utils.GenerateRandomRequest(year, week, n)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(req); err != nil {
		logger.Error("无法序列化请求载荷", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
