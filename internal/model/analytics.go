package model

import "encoding/json"

// DashboardOverview 上游预聚合的总览数据，门户原样透传给图表渲染
type DashboardOverview struct {
	ActivePatients    int             `json:"activePatients"`
	TodayAppointments int             `json:"todayAppointments"`
	PendingInvoices   int             `json:"pendingInvoices"`
	MonthlyRevenue    float64         `json:"monthlyRevenue"`
	StaffOnDuty       int             `json:"staffOnDuty"`
	Charts            json.RawMessage `json:"charts"`
}

// ReportSeries 单个报表的时间序列，无需门户侧再加工
type ReportSeries struct {
	Name   string          `json:"name"`
	Period string          `json:"period"`
	Points json.RawMessage `json:"points"`
}
