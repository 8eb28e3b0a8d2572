package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// PaymentMethod is one of the supported mobile-payment providers. Payment
// is a trusted simulation; no gateway is ever contacted.
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
)

// IsValid checks whether the payment method is supported
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodBkash || m == PaymentMethodNagad
}

// Appointment represents a session-scoped appointment created by the
// booking operation. Lifecycle: Pending --payment--> Confirmed,
// Pending --cancel--> Cancelled. Completed is a reachable status value
// that no operation here produces.
type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	DoctorID    string            `json:"doctor_id"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IsPending checks if appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
	a.UpdatedAt = time.Now()
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
	a.UpdatedAt = time.Now()
}
