package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/deptboard/board-service/internal/domain"
	"github.com/deptboard/board-service/internal/infrastructure/redis"
	"github.com/deptboard/board-service/internal/transport/http/handlers"
	"github.com/deptboard/board-service/internal/transport/http/middleware"
	"github.com/deptboard/board-service/internal/transport/http/response"
)

type Deps struct {
	Auth    *handlers.AuthHandler
	Board   *handlers.BoardHandler
	Admin   *handlers.AdminHandler
	Student *handlers.StudentHandler
	Health  *handlers.HealthHandler

	Verifier    middleware.TokenVerifier
	RateLimiter *redis.FixedWindowLimiter

	CORSOrigins    []string
	MaxUploadBytes int64
	UploadDir      string
}

// New wires the route tree. Auth endpoints are mounted both under /api/auth
// and at the root so older clients keep working.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(d.CORSOrigins))
	r.Use(middleware.BodyLimit(d.MaxUploadBytes))

	writeErr := response.WriteError
	authMW := middleware.Auth(d.Verifier, writeErr)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin), writeErr)
	studentOnly := middleware.RequireRole(string(domain.RoleStudent), writeErr)

	signupLimit := middleware.RateLimit(d.RateLimiter, "signup", 10, time.Hour, writeErr)
	loginLimit := middleware.RateLimit(d.RateLimiter, "login", 20, 15*time.Minute, writeErr)

	authRoutes := func(r chi.Router) {
		r.With(signupLimit).Post("/signup", d.Auth.Signup)
		r.With(loginLimit).Post("/login", d.Auth.Login)
		r.Post("/verify", d.Auth.Verify)
	}

	// legacy mount at the root
	r.Group(authRoutes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", authRoutes)

		r.Get("/health", d.Health.Health)

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", d.Board.ListAnnouncements)
			r.Get("/featured", d.Board.FeaturedAnnouncements)
			r.Get("/{id}", d.Board.GetAnnouncement)
		})
		r.Get("/timetables/{level}", d.Board.TimetablesByLevel)
		r.Get("/events", d.Board.ListEvents)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW, adminOnly)

			r.Post("/announcements", d.Admin.CreateAnnouncement)
			r.Put("/announcements/{id}", d.Admin.UpdateAnnouncement)
			r.Delete("/announcements/{id}", d.Admin.DeleteAnnouncement)

			r.Get("/timetables", d.Admin.ListTimetables)
			r.Post("/timetables", d.Admin.CreateTimetable)
			r.Delete("/timetables/{id}", d.Admin.DeleteTimetable)

			r.Post("/events", d.Admin.CreateEvent)
			r.Delete("/events/{id}", d.Admin.DeleteEvent)

			r.Post("/results", d.Admin.CreateResult)
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(authMW, studentOnly)

			r.Get("/profile", d.Student.Profile)
			r.Put("/profile", d.Student.UpdateProfile)
			r.Put("/profile/picture", d.Student.UpdateProfilePicture)
			// older clients upload with POST
			r.Post("/profile/picture", d.Student.UpdateProfilePicture)

			r.Get("/timetable", d.Student.Timetable)
			r.Get("/results", d.Student.Results)

			r.Get("/archives", d.Student.Archives)
			r.Post("/archives", d.Student.Archive)
			r.Delete("/archives/{id}", d.Student.Unarchive)
		})
	})

	r.Get("/health", d.Health.Health)
	r.Get("/readyz", d.Health.Readyz)

	// uploaded files are public
	if d.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}
