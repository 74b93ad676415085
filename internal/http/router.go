package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/finsight/server/internal/auth"
	"github.com/finsight/server/internal/http/handlers"
	"github.com/finsight/server/internal/middleware"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	newsHandler *handlers.NewsHandler,
	staticHandler *handlers.StaticHandler,
	sessions *auth.Sessions,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	healthHandler := handlers.NewHealthHandler()
	r.Get("/health", healthHandler.ServeHTTP)

	r.Post("/send-otp", authHandler.HandleSendOTP)
	r.Post("/verify-otp", authHandler.HandleVerifyOTP)
	r.Post("/create-account", authHandler.HandleCreateAccount)
	r.Post("/login", authHandler.HandleLogin)
	r.Post("/logout", authHandler.HandleLogout)

	r.Get("/news", newsHandler.HandleNews)

	// Protected routes (require a valid session cookie)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))
		r.Get("/profile", profileHandler.HandleProfile)
		r.Post("/update-password", profileHandler.HandleUpdatePassword)
	})

	r.Get("/images/{name}", staticHandler.HandleImage)
	r.Get("/{page}.html", staticHandler.HandlePage)
	r.Get("/", staticHandler.HandleIndex)

	return r
}
