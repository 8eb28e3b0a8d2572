package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	PatientName string `json:"patient_name" validate:"required,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,max=20"`
}

type ConfirmPaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=bkash nagad"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	DoctorID    string          `json:"doctor_id"`
	PatientName string          `json:"patient_name"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
