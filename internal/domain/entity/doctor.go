package entity

// Specialty is the closed set of medical disciplines used to classify
// doctors and as a filter facet.
type Specialty string

const (
	SpecialtyCardiology  Specialty = "Cardiology"
	SpecialtyNeurology   Specialty = "Neurology"
	SpecialtyPediatrics  Specialty = "Pediatrics"
	SpecialtyGynecology  Specialty = "Gynecology"
	SpecialtyOrthopedics Specialty = "Orthopedics"
	SpecialtyMedicine    Specialty = "Medicine"
	SpecialtyDermatology Specialty = "Dermatology"
	SpecialtyENT         Specialty = "ENT"
)

// SpecialtyAll is the wildcard filter facet. It is not a valid doctor
// specialty; it only widens a filter to match every specialty.
const SpecialtyAll = "All"

// AllSpecialties returns the closed specialty set in its fixed order.
func AllSpecialties() []Specialty {
	return []Specialty{
		SpecialtyCardiology,
		SpecialtyNeurology,
		SpecialtyPediatrics,
		SpecialtyGynecology,
		SpecialtyOrthopedics,
		SpecialtyMedicine,
		SpecialtyDermatology,
		SpecialtyENT,
	}
}

// IsValid checks whether the specialty is a member of the closed set.
func (s Specialty) IsValid() bool {
	for _, known := range AllSpecialties() {
		if s == known {
			return true
		}
	}
	return false
}

// Doctor represents a doctor record in the catalog. Records are immutable
// after the catalog is seeded.
type Doctor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    Specialty `json:"specialty"`
	HospitalID   string    `json:"hospital_id"`
	HospitalName string    `json:"hospital_name"`
	Rating       float64   `json:"rating"`
	Fee          int       `json:"fee"`
	Availability []string  `json:"availability"`
	Bio          string    `json:"bio,omitempty"`
	Contact      string    `json:"contact"`
}
