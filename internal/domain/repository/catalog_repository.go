package repository

import (
	"go-clinic-directory/internal/domain/entity"
)

// CatalogRepository is the static, read-only directory of doctors,
// hospitals and specialties. Returned slices preserve seed insertion order
// and must not be modified by callers.
type CatalogRepository interface {
	Doctors() []entity.Doctor
	Hospitals() []entity.Hospital
	Specialties() []entity.Specialty
	FindDoctorByID(id string) (*entity.Doctor, bool)
	FindHospitalByID(id string) (*entity.Hospital, bool)
}
