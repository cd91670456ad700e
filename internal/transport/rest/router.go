package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"istitlaa/internal/notify"
	"istitlaa/internal/service"
	"istitlaa/internal/transport/rest/handler"
	"istitlaa/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	PollService     *service.PollService
	QuestionService *service.QuestionService
	ResultService   *service.ResultService
	Hub             *notify.Hub
	AllowedOrigins  string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	pollHandler := handler.NewPollHandler(c.PollService)
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	wsHandler := notify.NewHandler(c.Hub, c.AuthService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware(c.AllowedOrigins))
	r.Use(middleware.Metrics)

	// Health and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Static /polls/... paths must register before /polls/{id}.
	r.HandleFunc("/polls/solve", pollHandler.Solve).Methods("POST", "OPTIONS")
	r.HandleFunc("/polls/responses/{pollId}", resultHandler.Responses).Methods("GET", "OPTIONS")
	r.HandleFunc("/polls", pollHandler.List).Methods("GET", "OPTIONS")

	r.HandleFunc("/questions/poll/{pollId}", questionHandler.ListByPoll).Methods("GET", "OPTIONS")
	r.HandleFunc("/questions/{id}", questionHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket dashboard feed (token in query param)
	r.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := r.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/polls/scores", resultHandler.Scores).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/polls", pollHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/polls/{id}/score", resultHandler.Score).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/polls/{id}/participants", resultHandler.Participants).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/polls/{id}", pollHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/polls/{id}", pollHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/questions", questionHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/questions/{id}", questionHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/questions/{id}", questionHandler.Delete).Methods("DELETE", "OPTIONS")

	// Public poll detail registers last so the static paths win.
	r.HandleFunc("/polls/{id}", pollHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
