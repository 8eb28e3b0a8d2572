package usecase

import (
	"context"
	"errors"
	"strings"

	"go-clinic-directory/internal/converter"
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
	"go-clinic-directory/internal/domain/repository"
)

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrHospitalNotFound = errors.New("hospital not found")
)

type CatalogUsecase interface {
	FilterDoctors(ctx context.Context, query, specialty string) (*dto.DoctorListResponse, error)
	FilterHospitals(ctx context.Context, query string) (*dto.HospitalListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetHospital(ctx context.Context, id string) (*dto.HospitalResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type catalogUsecase struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogUsecase(catalogRepo repository.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{
		catalogRepo: catalogRepo,
	}
}

// FilterDoctors narrows the doctor list by a case-insensitive substring
// match on name or specialty, plus an optional specialty facet. An empty
// query matches everything; the "All" facet (or an empty one) is a no-op.
// Result order preserves catalog insertion order.
func (u *catalogUsecase) FilterDoctors(ctx context.Context, query, specialty string) (*dto.DoctorListResponse, error) {
	q := strings.ToLower(query)

	matched := make([]entity.Doctor, 0)
	for _, doctor := range u.catalogRepo.Doctors() {
		if !strings.Contains(strings.ToLower(doctor.Name), q) &&
			!strings.Contains(strings.ToLower(string(doctor.Specialty)), q) {
			continue
		}
		if specialty != "" && specialty != entity.SpecialtyAll && string(doctor.Specialty) != specialty {
			continue
		}
		matched = append(matched, doctor)
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(matched),
		Total:   len(matched),
	}, nil
}

// FilterHospitals narrows the hospital list by a case-insensitive substring
// match on name or location. An empty query matches everything.
func (u *catalogUsecase) FilterHospitals(ctx context.Context, query string) (*dto.HospitalListResponse, error) {
	q := strings.ToLower(query)

	matched := make([]entity.Hospital, 0)
	for _, hospital := range u.catalogRepo.Hospitals() {
		if !strings.Contains(strings.ToLower(hospital.Name), q) &&
			!strings.Contains(strings.ToLower(hospital.Location), q) {
			continue
		}
		matched = append(matched, hospital)
	}

	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(matched),
		Total:     len(matched),
	}, nil
}

func (u *catalogUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, ok := u.catalogRepo.FindDoctorByID(id)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *catalogUsecase) GetHospital(ctx context.Context, id string) (*dto.HospitalResponse, error) {
	hospital, ok := u.catalogRepo.FindHospitalByID(id)
	if !ok {
		return nil, ErrHospitalNotFound
	}
	return converter.HospitalToResponse(hospital), nil
}

func (u *catalogUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	return converter.SpecialtiesToResponse(u.catalogRepo.Specialties()), nil
}
