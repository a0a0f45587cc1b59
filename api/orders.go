package api

import (
	"net/http"

	"github.com/Domenick1991/airports/internal/auth"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/service/orders"
	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the caller's own orders. The user id always comes
// from the verified identity, never from the request body.
type OrderHandler struct {
	service   orders.OrderUseCase
	paginator Paginator
}

func NewOrderHandler(service orders.OrderUseCase, paginator Paginator) *OrderHandler {
	return &OrderHandler{service: service, paginator: paginator}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

type ticketRequest struct {
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight" binding:"required"`
}

type orderRequest struct {
	Tickets []ticketRequest `json:"tickets" binding:"required,min=1,dive"`
}

func (r orderRequest) tickets() []domain.Ticket {
	tickets := make([]domain.Ticket, 0, len(r.Tickets))
	for _, t := range r.Tickets {
		tickets = append(tickets, domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: t.Flight})
	}
	return tickets
}

func (h *OrderHandler) list(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	items, total, err := h.service.List(c.Request.Context(), id.UserID, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(items, newOrderListView), len(items), total)
}

func (h *OrderHandler) get(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), id.UserID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderListView(*order))
}

func (h *OrderHandler) create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var body orderRequest
	if !bindJSON(c, &body) {
		return
	}
	order, err := h.service.Create(c.Request.Context(), id.UserID, body.tickets())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderWriteView(*order))
}

func (h *OrderHandler) update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	var body orderRequest
	if !bindJSON(c, &body) {
		return
	}
	order, err := h.service.Update(c.Request.Context(), id.UserID, orderID, body.tickets())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderWriteView(*order))
}

func (h *OrderHandler) delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id.UserID, orderID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func identity(c *gin.Context) (auth.Identity, bool) {
	id, ok := auth.FromContext(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return auth.Identity{}, false
	}
	return id, true
}
