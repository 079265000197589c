package utils

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "霞", "飞", "玲", "超",
	"华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var digits = "0123456789"

// GenerateEmployeeIDFromChineseName 用姓名的拼音加随机数字生成员工 ID
func GenerateEmployeeIDFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	id := ""

	for _, p := range pinyinArray {
		id += p
	}

	digitsLength := rand.Intn(3) + 2
	for i := 0; i < digitsLength; i++ {
		id += string(digits[rand.Intn(len(digits))])
	}

	return id
}

var exceptionTypes = []domain.ExceptionType{
	domain.ExceptionVacation,
	domain.ExceptionSick,
	domain.ExceptionUnavailable,
	domain.ExceptionTraining,
	domain.ExceptionReduced,
}

// GenerateRandomEmployee 生成一个带有随机例外和偏好的员工
func GenerateRandomEmployee(year int, weekNumber int) domain.Employee {
	name := GenerateRandomChineseName()
	emp := domain.Employee{
		ID:                   GenerateEmployeeIDFromChineseName(name),
		Name:                 name,
		ContractHoursPerWeek: float64(rand.Intn(5)*5 + 20), // 20~40 小时
	}

	weekStart := domain.ISOWeekStart(year, weekNumber)

	// 一半的员工有固定休息日
	if rand.Intn(2) == 0 {
		restDay := domain.Weekday(rand.Intn(7) + 1)
		emp.RestDay = &restDay
	}

	excNum := rand.Intn(3)
	for i := 0; i < excNum; i++ {
		date := weekStart.AddDate(0, 0, rand.Intn(7))
		emp.Exceptions = append(emp.Exceptions, domain.Exception{
			Date: date.Format("2006-01-02"),
			Type: exceptionTypes[rand.Intn(len(exceptionTypes))],
		})
	}

	if rand.Intn(2) == 0 {
		pref := &domain.Preference{
			AllowSplitShifts: rand.Intn(2) == 0,
		}
		dayNum := rand.Intn(3) + 1
		for _, day := range GenerateRandomWeekdaySubset(dayNum) {
			pref.PreferredDays = append(pref.PreferredDays, day)
		}
		if rand.Intn(2) == 0 {
			startHour := rand.Intn(8) + 8
			length := rand.Intn(4) + 2
			pref.PreferredHours = []string{
				fmt.Sprintf("%02d:00-%02d:00", startHour, startHour+length),
			}
		}
		emp.Preference = pref
	}

	return emp
}

// GenerateRandomWeekdaySubset 用 Fisher-Yates 洗牌算法生成随机的星期子集
func GenerateRandomWeekdaySubset(n int) []domain.Weekday {
	days := domain.AllWeekdays()

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	if n > len(days) {
		n = len(days)
	}
	return days[:n]
}

// GenerateRandomRequest 生成一份完整的自动排班请求载荷，用于手工测试
func GenerateRandomRequest(year int, weekNumber int, employeeNum int) *domain.GenerateRequest {
	req := &domain.GenerateRequest{
		WeekNumber: weekNumber,
		Year:       year,
		Employees:  make([]domain.Employee, 0, employeeNum),
	}

	for i := 0; i < employeeNum; i++ {
		req.Employees = append(req.Employees, GenerateRandomEmployee(year, weekNumber))
	}

	maxHours := float64(rand.Intn(3) + 7)
	req.CompanyConstraints = &domain.CompanyConstraints{
		OpenDays:            []domain.Weekday{domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday, domain.Saturday},
		OpenHours:           []string{"08:30-12:30", "13:30-19:00"},
		MinEmployeesPerSlot: rand.Intn(3),
		MaxHoursPerDay:      &maxHours,
		MandatoryLunchBreak: rand.Intn(2) == 0,
	}

	return req
}
