package readings

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", h.Status)
	e.GET("/readings", h.ListReadings)
	e.POST("/readings", h.CreateReadings)
}

// ListResponse is the body of a successful GET /readings.
type ListResponse struct {
	Readings []Reading `json:"readings"`
}

// CreateRequest is the body of POST /readings.
type CreateRequest struct {
	Readings []NewReading `json:"readings"`
}

// CreateResponse reports how many readings a bulk insert wrote.
type CreateResponse struct {
	Inserted int `json:"inserted"`
}

// Status is the liveness endpoint.
func (h *Handler) Status(c echo.Context) error {
	return c.String(http.StatusOK, "Hi")
}

func (h *Handler) ListReadings(c echo.Context) error {
	q := Query{
		Patient: c.QueryParam("patient"),
		From:    c.QueryParam("from"),
		Until:   c.QueryParam("until"),
		Page:    c.QueryParam("page"),
	}

	result, err := h.svc.List(c.Request().Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, ListResponse{Readings: result})
}

func (h *Handler) CreateReadings(c echo.Context) error {
	var payload CreateRequest
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := h.svc.Record(c.Request().Context(), payload.Readings)
	if err != nil {
		if errors.Is(err, ErrNoReadings) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, CreateResponse{Inserted: count})
}
