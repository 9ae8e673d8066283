package http

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-list.com/task-list/internal/http/middlewares"
	"task-list.com/task-list/internal/ratelimit"
	"task-list.com/task-list/web"
)

var taskPrefixes = []string{"/tasks", "/api/tasks"}

// NewServer builds the echo instance with the shared middleware stack.
func NewServer(logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Recover(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			"X-Requested-With",
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))

	return e
}

func Register(e *echo.Echo, h *Handler, store Pinger, limiter ratelimit.Limiter, logger *log.Logger) {
	limit := middleware.RateLimiter(limiter, logger)

	for _, prefix := range taskPrefixes {
		g := e.Group(prefix, limit)
		g.GET("", h.ListTasks)
		g.POST("", h.CreateTask)
		g.POST("/reorder", h.ReorderTasks)
		g.GET("/:id", h.GetTask)
		g.PUT("/:id", h.UpdateTask)
		g.DELETE("/:id", h.DeleteTask)
	}

	e.GET("/healthz", Health(store))
	e.StaticFS("/", web.PublicFS())
}
