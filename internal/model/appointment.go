package model

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment 预约/排班条目
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	StaffID   string `json:"staffId"`
	Type      string `json:"type"` // consultation | home_visit | lab | physio
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// AppointmentFilter 日历与列表查询条件
type AppointmentFilter struct {
	PatientID string
	StaffID   string
	Status    string
	DateFrom  string
	DateTo    string
	Page      int
	Limit     int
}
