package converter

import (
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO. The
// doctor record is optional denormalized catalog info.
func AppointmentToResponse(appointment *entity.Appointment, doctor *entity.Doctor) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientName: appointment.PatientName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Status:      string(appointment.Status),
		Doctor:      DoctorToResponse(doctor),
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}
