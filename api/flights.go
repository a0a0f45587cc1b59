package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service   flights.FlightUseCase
	paginator Paginator
	imageURL  imageURL
}

func NewFlightHandler(service flights.FlightUseCase, paginator Paginator, mediaURL func(string) string) *FlightHandler {
	return &FlightHandler{service: service, paginator: paginator, imageURL: mediaURL}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.PATCH("/:id", h.patch)
	router.DELETE("/:id", h.delete)
}

type flightRequest struct {
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewMembers   []int64   `json:"crew_members" binding:"omitempty,dive,gt=0"`
}

func (r flightRequest) flight(id int64) domain.Flight {
	return domain.Flight{
		ID:            id,
		RouteID:       r.Route,
		AirplaneID:    r.Airplane,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		CrewIDs:       r.CrewMembers,
	}
}

type flightPatchRequest struct {
	Route         *int64     `json:"route"`
	Airplane      *int64     `json:"airplane"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	CrewMembers   *[]int64   `json:"crew_members"`
}

func (h *FlightHandler) list(c *gin.Context) {
	q := newQueryParser(c)
	filter := domain.FlightFilter{
		DepartureDate: q.date("departure_date"),
		ArrivalDate:   q.date("arrival_date"),
		RouteID:       q.id("route"),
	}
	if err := q.err(); err != nil {
		respondError(c, err)
		return
	}
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}

	items, total, err := h.service.List(c.Request.Context(), filter, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(items, newFlightListView), len(items), total)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	flight, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightDetailView(*flight, h.imageURL))
}

func (h *FlightHandler) create(c *gin.Context) {
	var body flightRequest
	if !bindJSON(c, &body) {
		return
	}
	flight := body.flight(0)
	if err := h.service.Create(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFlightWriteView(flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body flightRequest
	if !bindJSON(c, &body) {
		return
	}
	flight := body.flight(id)
	if err := h.service.Update(c.Request.Context(), &flight); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightWriteView(flight))
}

func (h *FlightHandler) patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body flightPatchRequest
	if !bindJSON(c, &body) {
		return
	}
	flight, err := h.service.Patch(c.Request.Context(), id, flights.Patch{
		RouteID:       body.Route,
		AirplaneID:    body.Airplane,
		DepartureTime: body.DepartureTime,
		ArrivalTime:   body.ArrivalTime,
		CrewIDs:       body.CrewMembers,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFlightWriteView(*flight))
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
