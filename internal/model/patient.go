package model

// Patient 患者档案（上游拥有并校验，门户仅持有瞬时副本）
type Patient struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"dateOfBirth"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	BloodGroup       string `json:"bloodGroup"`
	Allergies        string `json:"allergies"`
	MedicalHistory   string `json:"medicalHistory"`
	Status           string `json:"status"` // active | discharged | deceased
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// PatientFilter 列表检索条件
type PatientFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}
