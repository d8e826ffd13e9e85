package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"user-management-service/internal/application/command"
	"user-management-service/internal/application/interfaces"
	"user-management-service/internal/application/services"
)

const (
	WelcomeMessage = "Hello from the User Management Service!"
	StatusMessage  = "Application is running successfully!"

	HeaderIdempotencyKey = "Idempotency-Key"
)

// Response is the envelope used for error bodies.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Code    int         `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// UserRequest is the body of create and update calls.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Handler struct {
	userService interfaces.UserService
	metrics     func() map[string]interface{}
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// /api/metrics is not registered.
func NewHandler(userService interfaces.UserService, metrics func() map[string]interface{}) *Handler {
	return &Handler{userService: userService, metrics: metrics}
}

// Register mounts all routes on e. /api/users/count is a static route and
// takes precedence over /api/users/:id.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Hello)
	e.GET("/api/status", h.Status)
	if h.metrics != nil {
		e.GET("/api/metrics", h.Metrics)
	}

	users := e.Group("/api/users")
	users.GET("", h.GetUsers)
	users.POST("", h.CreateUser)
	users.GET("/count", h.GetUserCount)
	users.GET("/:id", h.GetUserByID)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (h *Handler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, WelcomeMessage)
}

func (h *Handler) Status(c echo.Context) error {
	return c.String(http.StatusOK, StatusMessage)
}

func (h *Handler) Metrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.metrics())
}

func (h *Handler) GetUsers(c echo.Context) error {
	result, err := h.userService.GetAllUsers(c.Request().Context())
	if err != nil {
		return h.internalError(err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) GetUserCount(c echo.Context) error {
	count, err := h.userService.GetUserCount(c.Request().Context())
	if err != nil {
		return h.internalError(err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Total users: %d", count))
}

func (h *Handler) GetUserByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	result, err := h.userService.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return h.internalError(err)
	}
	if result == nil {
		return userNotFound(id)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.userService.CreateUser(c.Request().Context(), &command.CreateUserCommand{
		Name:           req.Name,
		Email:          req.Email,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return h.serviceError(err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.userService.UpdateUser(c.Request().Context(), &command.UpdateUserCommand{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return h.serviceError(err)
	}
	if result == nil {
		return userNotFound(id)
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	deleted, err := h.userService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return h.internalError(err)
	}
	if !deleted {
		return userNotFound(id)
	}
	return c.NoContent(http.StatusNoContent)
}

// ErrorHandler renders every error as a Response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, Response{Status: "error", Message: message, Code: code})
	}
	if err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}

func (h *Handler) serviceError(err error) error {
	if services.IsClientError(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.internalError(err)
}

func (h *Handler) internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid user id %q", c.Param("id")))
	}
	return uint(id), nil
}

func userNotFound(id uint) error {
	return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("User %d not found", id))
}
