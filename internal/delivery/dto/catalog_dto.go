package dto

// Response DTOs

type DoctorResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	HospitalID   string   `json:"hospital_id"`
	HospitalName string   `json:"hospital_name"`
	Rating       float64  `json:"rating"`
	Fee          int      `json:"fee"`
	Availability []string `json:"availability"`
	Bio          string   `json:"bio,omitempty"`
	Contact      string   `json:"contact"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type HospitalResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location string   `json:"location"`
	Services []string `json:"services"`
	Contact  string   `json:"contact"`
	Rating   float64  `json:"rating"`
}

type HospitalListResponse struct {
	Hospitals []HospitalResponse `json:"hospitals"`
	Total     int                `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
