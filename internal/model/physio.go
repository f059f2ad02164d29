package model

// PhysioAssessment 理疗初评
type PhysioAssessment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patientId"`
	TherapistID     string `json:"therapistId"`
	ChiefComplaint  string `json:"chiefComplaint"`
	PainScale       int    `json:"painScale"` // 0-10
	RangeOfMotion   string `json:"rangeOfMotion"`
	MuscleStrength  string `json:"muscleStrength"`
	FunctionalGoals string `json:"functionalGoals"`
	AssessedAt      string `json:"assessedAt"`
}

// TreatmentPlan 治疗计划
type TreatmentPlan struct {
	ID              string `json:"id"`
	AssessmentID    string `json:"assessmentId"`
	PatientID       string `json:"patientId"`
	Diagnosis       string `json:"diagnosis"`
	PlannedSessions int    `json:"plannedSessions"`
	Frequency       string `json:"frequency"` // e.g. 3x/week
	Interventions   string `json:"interventions"`
	Status          string `json:"status"` // active | completed | discontinued
	Progress        int    `json:"progress"`
	StartDate       string `json:"startDate"`
}

// TherapySession 单次理疗记录
type TherapySession struct {
	ID          string `json:"id"`
	PlanID      string `json:"planId"`
	PatientID   string `json:"patientId"`
	TherapistID string `json:"therapistId"`
	Date        string `json:"date"`
	Procedures  string `json:"procedures"`
	Response    string `json:"response"`
	PainBefore  int    `json:"painBefore"`
	PainAfter   int    `json:"painAfter"`
	Notes       string `json:"notes"`
}
