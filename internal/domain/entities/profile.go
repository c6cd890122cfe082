package entities

// Citizen is the CITIZEN role profile.
type Citizen struct {
	ID                       uint   `json:"citizen_id"`
	Username                 string `json:"username"`
	DateOfBirth              Date   `json:"date_of_birth"`
	DateOfDeath              *Date  `json:"date_of_death"`
	Gender                   string `json:"gender"`
	Address                  string `json:"address"`
	EducationalQualification string `json:"educational_qualification"`
	Occupation               string `json:"occupation"`
}

// Admin is the ADMIN role profile.
type Admin struct {
	ID          uint   `json:"admin_id"`
	Username    string `json:"username"`
	Gender      string `json:"gender"`
	DateOfBirth Date   `json:"date_of_birth"`
	Address     string `json:"address"`
}

// GovernmentAgency is the GOVERNMENT_AGENCY role profile. Role is a job title.
type GovernmentAgency struct {
	ID       uint   `json:"agency_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// PanchayatEmployee is the PANCHAYAT_EMPLOYEE role profile. Role is a job title.
type PanchayatEmployee struct {
	ID       uint   `json:"employee_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CitizenProfileUpdate lists the citizen fields a citizen may change. Nil
// fields are left untouched.
type CitizenProfileUpdate struct {
	Gender                   *string `json:"Gender"`
	Address                  *string `json:"Address"`
	EducationalQualification *string `json:"Educational_qualification"`
	Occupation               *string `json:"Occupation"`
	DateOfDeath              *Date   `json:"Date_of_death"`
}

// Empty reports whether the update changes nothing.
func (u CitizenProfileUpdate) Empty() bool {
	return u.Gender == nil && u.Address == nil && u.EducationalQualification == nil &&
		u.Occupation == nil && u.DateOfDeath == nil
}
