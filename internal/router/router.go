package router

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"scholarhub/internal/auth"
	"scholarhub/internal/db"
	"scholarhub/internal/handler"
	appmw "scholarhub/internal/middleware"
)

// Deps are the collaborators routes are wired to.
type Deps struct {
	Logger      *slog.Logger
	CORSOrigins []string
	Conns       db.Provider
	RoleGate    *appmw.RoleGate
	// JWT, when set, guards privileged routes with a verified bearer token.
	JWT *auth.JWTService

	Health      *handler.HealthHandler
	Users       *handler.UserHandler
	Scholarship *handler.ScholarshipHandler
	Payment     *handler.PaymentHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, d Deps) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     d.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(appmw.Readiness(d.Conns, appmw.ProbeSkipper))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", d.Health.Health)
	e.GET("/diag", d.Health.Diag)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/create-user", d.Users.CreateUser)
	e.GET("/users/:email", d.Users.GetUser)
	e.GET("/", d.Scholarship.Top)
	e.GET("/all-data", d.Scholarship.All)
	e.GET("/scholarship/:id", d.Scholarship.Detail)
	e.POST("/create-payment-intent", d.Payment.CreatePaymentIntent)

	// Privileged routes carry their gates per route.
	var guard []echo.MiddlewareFunc
	if d.JWT != nil {
		guard = append(guard, auth.RequireToken(d.JWT))
	}
	adminOnly := append(append([]echo.MiddlewareFunc{}, guard...), d.RoleGate.AdminOnly())
	staffOrAdmin := append(append([]echo.MiddlewareFunc{}, guard...), d.RoleGate.StaffOrAdmin())

	e.GET("/all-users", d.Users.ListUsers, adminOnly...)
	e.PATCH("/update-role/:id", d.Users.UpdateRole, adminOnly...)
	e.POST("/add-scholarship", d.Scholarship.Create, staffOrAdmin...)
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = slog.Default()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			log.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
