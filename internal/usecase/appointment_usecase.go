package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-clinic-directory/internal/converter"
	"go-clinic-directory/internal/delivery/dto"
	"go-clinic-directory/internal/domain/entity"
	"go-clinic-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidTransition is returned when a status transition is attempted
// on an unknown appointment or one not in the required state. It is an
// explicit failure, never a silent no-op.
var ErrInvalidTransition = errors.New("invalid appointment status transition")

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, method entity.PaymentMethod) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) (*dto.AppointmentListResponse, error)
}

// appointmentUsecase owns the session-scoped appointment list. The list is
// append-only except for in-place status updates, and is mutated only
// through this usecase.
type appointmentUsecase struct {
	log         *logrus.Logger
	catalogRepo repository.CatalogRepository

	mu           sync.Mutex
	appointments []*entity.Appointment
	byID         map[uuid.UUID]*entity.Appointment
}

func NewAppointmentUsecase(log *logrus.Logger, catalogRepo repository.CatalogRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:         log,
		catalogRepo: catalogRepo,
		byID:        make(map[uuid.UUID]*entity.Appointment),
	}
}

// Book creates a new Pending appointment for the given doctor with the
// caller-supplied patient name, date and time. The doctor ID is validated
// against the catalog.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctor, ok := u.catalogRepo.FindDoctorByID(req.DoctorID)
	if !ok {
		return nil, ErrDoctorNotFound
	}

	now := time.Now()
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		DoctorID:    doctor.ID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Status:      entity.AppointmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	u.mu.Lock()
	u.appointments = append(u.appointments, appointment)
	u.byID[appointment.ID] = appointment
	u.mu.Unlock()

	u.log.Infof("Appointment created: id=%s, doctor=%s, date=%s %s", appointment.ID, doctor.ID, req.Date, req.Time)
	return converter.AppointmentToResponse(appointment, doctor), nil
}

// ConfirmPayment transitions a Pending appointment to Confirmed. The
// payment method is a trusted simulation and always succeeds once a
// matching Pending appointment exists.
func (u *appointmentUsecase) ConfirmPayment(ctx context.Context, id uuid.UUID, method entity.PaymentMethod) (*dto.AppointmentResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, ok := u.byID[id]
	if !ok || !appointment.IsPending() {
		u.log.Warnf("Rejected payment confirmation for appointment %s: not found or not pending", id)
		return nil, ErrInvalidTransition
	}

	appointment.Confirm()

	doctor, _ := u.catalogRepo.FindDoctorByID(appointment.DoctorID)
	u.log.Infof("Appointment confirmed: id=%s, method=%s", id, method)
	return converter.AppointmentToResponse(appointment, doctor), nil
}

// Cancel transitions a Pending appointment to Cancelled.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	appointment, ok := u.byID[id]
	if !ok || !appointment.IsPending() {
		u.log.Warnf("Rejected cancellation for appointment %s: not found or not pending", id)
		return ErrInvalidTransition
	}

	appointment.Cancel()

	u.log.Infof("Appointment cancelled: id=%s", id)
	return nil
}

// List returns a snapshot of the session's appointments, oldest first.
func (u *appointmentUsecase) List(ctx context.Context) (*dto.AppointmentListResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	responses := make([]dto.AppointmentResponse, len(u.appointments))
	for i, appointment := range u.appointments {
		doctor, _ := u.catalogRepo.FindDoctorByID(appointment.DoctorID)
		responses[i] = *converter.AppointmentToResponse(appointment, doctor)
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}
