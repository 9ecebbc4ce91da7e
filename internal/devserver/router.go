package devserver

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vy-hr/portal-go/internal/pkg/jwt"
)

// NewRouter wires the VY wire contract onto chi. uploadsDir, when
// non-empty, is served under /uploads so stored profile photos resolve.
func NewRouter(handler *Handler, jwtService jwt.Service, env string, uploadsDir string) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "vy-devserver"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/register", handler.Register)
	})

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired)

		r.Route("/employee", func(r chi.Router) {
			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", handler.AttendanceStatus)
				r.Post("/mark-today", handler.MarkToday)
				r.Get("/month", handler.MonthAttendance)
			})
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", handler.GetProfile)
				r.Put("/", handler.UpdateProfile)
				r.Post("/photo", handler.UploadPhoto)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminOnly)
			r.Route("/admin", func(r chi.Router) {
				r.Get("/employees", handler.ListEmployees)
				r.Post("/employees", handler.CreateEmployee)
				r.Post("/attendance/{employeeID}/finalize", handler.FinalizeAttendance)
			})
		})
	})

	if uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
			fileServer.ServeHTTP(w, req)
		})
	}

	return r
}
