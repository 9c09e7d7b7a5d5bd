package http

import (
	"net/http"

	"health-tracker/internal/delivery/http/handler"
	"health-tracker/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	recordHandler      *handler.RecordHandler
	medicationHandler  *handler.MedicationHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	exportHandler      *handler.ExportHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	recordHandler *handler.RecordHandler,
	medicationHandler *handler.MedicationHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	exportHandler *handler.ExportHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		recordHandler:      recordHandler,
		medicationHandler:  medicationHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		exportHandler:      exportHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Tracker routes (protected)
	tracker := api.PathPrefix("").Subrouter()
	tracker.Use(r.authMiddleware.Authenticate)

	tracker.HandleFunc("/records", r.recordHandler.ListRecords).Methods(http.MethodGet)
	tracker.HandleFunc("/records", r.recordHandler.CreateRecord).Methods(http.MethodPost)
	tracker.HandleFunc("/records/{id}", r.recordHandler.GetRecord).Methods(http.MethodGet)
	tracker.HandleFunc("/records/{id}", r.recordHandler.UpdateRecord).Methods(http.MethodPut)
	tracker.HandleFunc("/records/{id}", r.recordHandler.DeleteRecord).Methods(http.MethodDelete)

	tracker.HandleFunc("/medications", r.medicationHandler.ListMedications).Methods(http.MethodGet)
	tracker.HandleFunc("/medications", r.medicationHandler.CreateMedication).Methods(http.MethodPost)
	tracker.HandleFunc("/medications/{id}", r.medicationHandler.GetMedication).Methods(http.MethodGet)
	tracker.HandleFunc("/medications/{id}", r.medicationHandler.UpdateMedication).Methods(http.MethodPut)
	tracker.HandleFunc("/medications/{id}", r.medicationHandler.DeleteMedication).Methods(http.MethodDelete)

	tracker.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	tracker.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	tracker.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	tracker.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	tracker.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	tracker.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	tracker.HandleFunc("/export", r.exportHandler.Export).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
