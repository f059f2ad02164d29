package model

// Feedback 患者/家属反馈
type Feedback struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	TargetType string `json:"targetType"` // staff | service | facility
	TargetID   string `json:"targetId"`
	Rating     int    `json:"rating"` // 1-5
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
}

// FeedbackSummary 上游预聚合的评分汇总
type FeedbackSummary struct {
	TargetType    string         `json:"targetType"`
	TargetID      string         `json:"targetId"`
	AverageRating float64        `json:"averageRating"`
	Count         int            `json:"count"`
	Distribution  map[string]int `json:"distribution"`
}
