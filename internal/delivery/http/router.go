package http

import (
	"net/http"
	"time"

	"dietary-advisor/internal/delivery/http/handler"
	"dietary-advisor/internal/delivery/http/middleware"
	"dietary-advisor/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	adviceHandler        *handler.AdviceHandler
	healthProfileHandler *handler.HealthProfileHandler
	commentHandler       *handler.CommentHandler
	auditLogHandler      *handler.AuditLogHandler
	corsMiddleware       *middleware.CORSMiddleware
	requestLogger        *middleware.RequestLogger
	recoveryMiddleware   *middleware.RecoveryMiddleware
}

func NewRouter(
	adviceHandler *handler.AdviceHandler,
	healthProfileHandler *handler.HealthProfileHandler,
	commentHandler *handler.CommentHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		adviceHandler:        adviceHandler,
		healthProfileHandler: healthProfileHandler,
		commentHandler:       commentHandler,
		auditLogHandler:      auditLogHandler,
		corsMiddleware:       corsMiddleware,
		requestLogger:        requestLogger,
		recoveryMiddleware:   recoveryMiddleware,
	}
}

// Setup registers every route and returns the fully wrapped handler.
func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Advice
	api.HandleFunc("/dietary-advice", r.adviceHandler.GenerateAdvice).Methods(http.MethodPost)

	// Health profiles; search is registered before {id}
	api.HandleFunc("/health-profiles", r.healthProfileHandler.CreateProfile).Methods(http.MethodPost)
	api.HandleFunc("/health-profiles", r.healthProfileHandler.GetAllProfiles).Methods(http.MethodGet)
	api.HandleFunc("/health-profiles/search", r.healthProfileHandler.SearchProfiles).Methods(http.MethodGet)
	api.HandleFunc("/health-profiles/{id}", r.healthProfileHandler.GetProfile).Methods(http.MethodGet)

	// Comments
	api.HandleFunc("/health-profiles/{id}/comments", r.commentHandler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/health-profiles/{id}/comments", r.commentHandler.GetProfileComments).Methods(http.MethodGet)
	api.HandleFunc("/health-profiles/{id}/comments/reply-counts", r.commentHandler.GetReplyCounts).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}/replies", r.commentHandler.GetReplies).Methods(http.MethodGet)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	api.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r.requestLogger.Handle(r.corsMiddleware.Handle(r.recoveryMiddleware.Handle(r.router)))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
