package pulsefit

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	attendanceread "github.com/magabrotheeeer/pulsefit/internal/http/handlers/attendance/read"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/attendance/record"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/auth/register"
	exercisecreate "github.com/magabrotheeeer/pulsefit/internal/http/handlers/exercise/create"
	exerciselist "github.com/magabrotheeeer/pulsefit/internal/http/handlers/exercise/list"
	exerciseremove "github.com/magabrotheeeer/pulsefit/internal/http/handlers/exercise/remove"
	subscriptionread "github.com/magabrotheeeer/pulsefit/internal/http/handlers/subscription/read"
	subscriptionupdate "github.com/magabrotheeeer/pulsefit/internal/http/handlers/subscription/update"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/system/health"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/system/initdb"
	userlist "github.com/magabrotheeeer/pulsefit/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/pulsefit/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/pulsefit/internal/http/handlers/user/stats"
	userupdate "github.com/magabrotheeeer/pulsefit/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/pulsefit/internal/http/middlewarectx"
	attendanceservice "github.com/magabrotheeeer/pulsefit/internal/services/attendance"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
	memberservice "github.com/magabrotheeeer/pulsefit/internal/services/member"
	workoutservice "github.com/magabrotheeeer/pulsefit/internal/services/workout"
	"github.com/magabrotheeeer/pulsefit/internal/storage"

	_ "github.com/magabrotheeeer/pulsefit/docs"
)

// Services собирает зависимости обработчиков.
type Services struct {
	Auth       *authservice.Service
	Attendance *attendanceservice.Service
	Member     *memberservice.Service
	Workout    *workoutservice.Service
	Storage    *storage.Storage
}

// RegisterRoutes регистрирует все маршруты приложения.
// API доступно и от корня, и под префиксом /api.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics,
	)

	api := func(r chi.Router) {
		r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)

		r.Get("/attendance", attendanceread.New(logger, s.Attendance).ServeHTTP)
		r.Post("/attendance", record.New(logger, s.Attendance).ServeHTTP)

		r.Get("/exercises", exerciselist.New(logger, s.Workout).ServeHTTP)
		r.Post("/exercises", exercisecreate.New(logger, s.Workout).ServeHTTP)
		r.Delete("/exercises", exerciseremove.New(logger, s.Workout).ServeHTTP)

		r.Get("/users", userlist.New(logger, s.Member).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, s.Member).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, s.Member).ServeHTTP)
		r.Get("/users/{id}/stats", stats.New(logger, s.Member).ServeHTTP)
		r.Get("/users/{id}/subscription", subscriptionread.New(logger, s.Member).ServeHTTP)
		r.Put("/users/{id}/subscription", subscriptionupdate.New(logger, s.Member).ServeHTTP)

		r.Get("/health", health.New(logger, s.Storage).ServeHTTP)
		r.Get("/init-database", initdb.New(logger, s.Storage).ServeHTTP)
	}

	api(r)
	r.Route("/api", api)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
