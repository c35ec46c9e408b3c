package domain

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	StaffID     int64     `json:"staffID"`
	ClientID    *int64    `json:"clientID"` // 散客预约时为空，只保留 ClientName
	ClientName  string    `json:"clientName"`
	ServiceID   *int64    `json:"serviceID"`
	Service     string    `json:"service"`
	Date        string    `json:"date"` // YYYY-MM-DD
	StartTime   string    `json:"startTime"`
	DurationMin int32     `json:"durationMin"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}
