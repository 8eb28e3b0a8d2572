package converter

import (
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    string(doctor.Specialty),
		HospitalID:   doctor.HospitalID,
		HospitalName: doctor.HospitalName,
		Rating:       doctor.Rating,
		Fee:          doctor.Fee,
		Availability: doctor.Availability,
		Bio:          doctor.Bio,
		Contact:      doctor.Contact,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:       hospital.ID,
		Name:     hospital.Name,
		Address:  hospital.Address,
		Location: hospital.Location,
		Services: hospital.Services,
		Contact:  hospital.Contact,
		Rating:   hospital.Rating,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		responses[i] = *HospitalToResponse(&hospital)
	}
	return responses
}

// SpecialtiesToResponse converts the specialty set to its list DTO
func SpecialtiesToResponse(specialties []entity.Specialty) *dto.SpecialtyListResponse {
	names := make([]string, len(specialties))
	for i, s := range specialties {
		names[i] = string(s)
	}
	return &dto.SpecialtyListResponse{
		Specialties: names,
		Total:       len(names),
	}
}
