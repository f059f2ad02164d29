package model

// StaffMember 员工档案：护士、专科医生、前台、账务、化验员、理疗师
type StaffMember struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           StaffRole `json:"role"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	LicenseNumber  string    `json:"licenseNumber"`
	HireDate       string    `json:"hireDate"`
	Active         bool      `json:"active"`
}

type StaffFilter struct {
	Role   string
	Active *bool
	Search string
	Page   int
	Limit  int
}
