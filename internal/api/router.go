package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/picsure/backend/internal/api/handlers"
	"github.com/picsure/backend/internal/api/middleware"
	"github.com/picsure/backend/internal/service"
	"github.com/picsure/backend/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	friendHandler := handlers.NewFriendHandler(services.Friend)
	albumHandler := handlers.NewAlbumHandler(services.Album)
	photoHandler := handlers.NewPhotoHandler(services.Photo)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Token)

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Token))
				r.Get("/me", authHandler.Me)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Token))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Put("/me", userHandler.UpdateProfile)
				r.Delete("/me", userHandler.DeleteAccount)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", userHandler.GetSettings)
				r.Put("/", userHandler.UpdateSettings)
			})

			r.Route("/friends", func(r chi.Router) {
				r.Get("/", friendHandler.List)
				r.Post("/", friendHandler.SendRequest)
				r.Get("/requests", friendHandler.ListRequests)
				r.Post("/requests/{id}/accept", friendHandler.AcceptRequest)
				r.Post("/requests/{id}/decline", friendHandler.DeclineRequest)
				r.Delete("/{userID}", friendHandler.Remove)
			})

			r.Route("/albums", func(r chi.Router) {
				r.Get("/", albumHandler.List)
				r.Post("/", albumHandler.Create)
				r.Get("/{id}", albumHandler.Get)
				r.Put("/{id}", albumHandler.Update)
				r.Delete("/{id}", albumHandler.Delete)

				r.Get("/{id}/photos", photoHandler.ListByAlbum)
				r.Post("/{id}/photos", photoHandler.Add)

				r.Get("/{id}/permissions", albumHandler.ListGrants)
				r.Post("/{id}/permissions", albumHandler.Grant)
			})

			r.Delete("/photos/{id}", photoHandler.Delete)
			r.Delete("/permissions/{id}", albumHandler.RevokeGrant)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
