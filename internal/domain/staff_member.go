package domain

import (
	"maps"
	"time"
)

type StaffMember struct {
	ID          int64                         `json:"id"`
	Name        string                        `json:"name"`
	Initials    string                        `json:"initials"`
	Specialty   string                        `json:"specialty"`
	Color       string                        `json:"color"`
	StartTime   string                        `json:"startTime"`
	EndTime     string                        `json:"endTime"`
	LunchStart  string                        `json:"lunchStart"`
	LunchEnd    string                        `json:"lunchEnd"`
	WeeklyHours map[time.Weekday]WorkingHours `json:"weeklyHours,omitempty"` // 单独设置的工作日，没有设置的日子使用上面的默认时间
	IsActive    bool                          `json:"isActive"`
	Version     int32                         `json:"-"`
}

// WorkingHours 是某一个工作日的排班，Enabled 为 false 表示当天不上班
type WorkingHours struct {
	Enabled    bool   `json:"enabled"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	LunchStart string `json:"lunchStart,omitempty"`
	LunchEnd   string `json:"lunchEnd,omitempty"`
}

func (s *StaffMember) Clone() *StaffMember {
	c := *s
	c.WeeklyHours = maps.Clone(s.WeeklyHours)
	return &c
}

// OnDate 返回员工在 date (YYYY-MM-DD) 当天生效的排班。当天不上班时返回的员工不可预约。
// date 无法解析时使用默认工作时间
func (s *StaffMember) OnDate(date string) *StaffMember {
	c := s.Clone()

	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return c
	}
	day, ok := s.WeeklyHours[d.Weekday()]
	if !ok {
		return c
	}

	if !day.Enabled {
		c.IsActive = false
		return c
	}
	c.StartTime = day.StartTime
	c.EndTime = day.EndTime
	c.LunchStart = day.LunchStart
	c.LunchEnd = day.LunchEnd
	return c
}
