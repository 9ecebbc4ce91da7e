package employee

// Employee is the wire shape shared by the profile endpoints and the
// admin employee listing. Money fields are whole rupees, matching the
// backend payroll representation.
type Employee struct {
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	OfficialEmail   string `json:"officialEmail"`
	ContactNumber   string `json:"contactNumber,omitempty"`
	RoleTitle       string `json:"roleTitle,omitempty"`
	BasicSalary     int    `json:"basicSalary"`
	HRA             int    `json:"hra"`
	Allowances      int    `json:"allowances"`
	IsActive        bool   `json:"isActive"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}
