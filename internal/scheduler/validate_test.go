package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/weekly-planning/backend/internal/domain"
)

func fullWeek(slots map[domain.Weekday][]domain.TimeSlot) domain.DaySchedule {
	ds := make(domain.DaySchedule, 7)
	for _, day := range domain.AllWeekdays() {
		ds[day] = slots[day]
		if ds[day] == nil {
			ds[day] = []domain.TimeSlot{}
		}
	}
	return ds
}

func TestValidatePlanning(t *testing.T) {
	employees := []domain.Employee{{ID: "emp1", ContractHoursPerWeek: 10}}

	planning := domain.GeneratedPlanning{
		"emp1": fullWeek(map[domain.Weekday][]domain.TimeSlot{
			domain.Monday: {
				{Start: "08:00", End: "12:00"},
				{Start: "13:00", End: "17:00"},
			},
		}),
	}

	assert.NoError(t, ValidatePlanning(planning, employees))
}

func TestValidatePlanning_MissingEmployee(t *testing.T) {
	employees := []domain.Employee{{ID: "emp1", ContractHoursPerWeek: 10}}

	err := ValidatePlanning(domain.GeneratedPlanning{}, employees)
	assert.Error(t, err)
}

func TestValidatePlanning_MissingWeekday(t *testing.T) {
	employees := []domain.Employee{{ID: "emp1", ContractHoursPerWeek: 10}}

	ds := fullWeek(nil)
	delete(ds, domain.Thursday)

	err := ValidatePlanning(domain.GeneratedPlanning{"emp1": ds}, employees)
	assert.Error(t, err)
}

func TestValidatePlanning_OverlappingSlots(t *testing.T) {
	employees := []domain.Employee{{ID: "emp1", ContractHoursPerWeek: 10}}

	planning := domain.GeneratedPlanning{
		"emp1": fullWeek(map[domain.Weekday][]domain.TimeSlot{
			domain.Monday: {
				{Start: "08:00", End: "12:00"},
				{Start: "11:00", End: "15:00"},
			},
		}),
	}

	err := ValidatePlanning(planning, employees)
	assert.Error(t, err)
}

func TestValidatePlanning_InvalidSlot(t *testing.T) {
	employees := []domain.Employee{{ID: "emp1", ContractHoursPerWeek: 10}}

	tests := []domain.TimeSlot{
		{Start: "12:00", End: "08:00"},
		{Start: "08:00", End: "08:00"},
		{Start: "8h00", End: "12:00"},
	}

	for _, slot := range tests {
		planning := domain.GeneratedPlanning{
			"emp1": fullWeek(map[domain.Weekday][]domain.TimeSlot{
				domain.Monday: {slot},
			}),
		}
		require.Error(t, ValidatePlanning(planning, employees), "时段 %+v 应该校验失败", slot)
	}
}

func TestValidatePlanning_AcceptsGeneratedResult(t *testing.T) {
	req := newRequest(
		[]domain.Employee{
			{ID: "emp1", ContractHoursPerWeek: 39},
			{ID: "emp2", ContractHoursPerWeek: 12, Preference: &domain.Preference{AllowSplitShifts: true}},
		},
		&domain.CompanyConstraints{
			OpenDays:            domain.AllWeekdays(),
			OpenHours:           []string{"08:00-12:00", "13:00-19:30"},
			MandatoryLunchBreak: true,
		},
	)

	result := generate(t, req)

	assert.NoError(t, ValidatePlanning(result.Planning, req.Employees))
}
