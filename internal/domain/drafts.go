package domain

// 以下 Draft 只携带对应表单需要的字段，写入前必须先经过校验

type StaffDraft struct {
	Name       string `json:"name" validate:"required,max=64"`
	Initials   string `json:"initials" validate:"omitempty,max=3"`
	Specialty  string `json:"specialty" validate:"max=64"`
	Color      string `json:"color" validate:"required,hexcolor"`
	StartTime  string `json:"startTime" validate:"required,hhmm"`
	EndTime    string `json:"endTime" validate:"required,hhmm"`
	LunchStart string `json:"lunchStart" validate:"required,hhmm"`
	LunchEnd   string `json:"lunchEnd" validate:"required,hhmm"`
	IsActive   *bool  `json:"isActive"`
}

type StaffHoursDraft struct {
	StartTime  string `json:"startTime" validate:"required,hhmm"`
	EndTime    string `json:"endTime" validate:"required,hhmm"`
	LunchStart string `json:"lunchStart" validate:"required,hhmm"`
	LunchEnd   string `json:"lunchEnd" validate:"required,hhmm"`
}

type AppointmentDraft struct {
	StaffID     int64  `json:"staffID" validate:"required,gt=0"`
	ClientID    *int64 `json:"clientID" validate:"omitempty,gt=0"`
	ClientName  string `json:"clientName" validate:"required_without=ClientID,max=64"`
	ServiceID   *int64 `json:"serviceID" validate:"omitempty,gt=0"`
	Service     string `json:"service" validate:"required_without=ServiceID,max=64"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" validate:"required,hhmm"`
	DurationMin int32  `json:"durationMin" validate:"gte=0,lte=720"` // 为 0 时使用服务的默认时长
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type ClientDraft struct {
	Name  string `json:"name" validate:"required,max=64"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
	Notes string `json:"notes" validate:"max=512"`
}

// WorkingHoursDraft 设置某一个工作日的排班，Enabled 为 false 时忽略时间字段
type WorkingHoursDraft struct {
	Enabled    bool   `json:"enabled"`
	StartTime  string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime    string `json:"endTime" validate:"omitempty,hhmm"`
	LunchStart string `json:"lunchStart" validate:"omitempty,hhmm"`
	LunchEnd   string `json:"lunchEnd" validate:"omitempty,hhmm"`
}
