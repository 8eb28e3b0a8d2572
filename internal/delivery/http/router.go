package http

import (
	"net/http"

	"go-clinic-directory/internal/delivery/http/handler"
	"go-clinic-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	catalogHandler     *handler.CatalogHandler
	appointmentHandler *handler.AppointmentHandler
	assistantHandler   *handler.AssistantHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	catalogHandler *handler.CatalogHandler,
	appointmentHandler *handler.AppointmentHandler,
	assistantHandler *handler.AssistantHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		catalogHandler:     catalogHandler,
		appointmentHandler: appointmentHandler,
		assistantHandler:   assistantHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Catalog routes (public, read-only)
	api.HandleFunc("/doctors", r.catalogHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.catalogHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/hospitals", r.catalogHandler.GetHospitals).Methods(http.MethodGet)
	api.HandleFunc("/hospitals/{id}", r.catalogHandler.GetHospital).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.catalogHandler.GetSpecialties).Methods(http.MethodGet)

	// Appointment routes
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/payment", r.appointmentHandler.ConfirmPayment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Assistant routes
	api.HandleFunc("/chat/messages", r.assistantHandler.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat/messages", r.assistantHandler.GetTranscript).Methods(http.MethodGet)
	api.HandleFunc("/chat/search", r.assistantHandler.SearchHealthInfo).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
