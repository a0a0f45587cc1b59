package api

import (
	"net/http"

	"github.com/Domenick1991/airports/internal/auth"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/Domenick1991/airports/internal/service/reference"
	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the list/create resources for geography, fleet and
// crew data.
type ReferenceHandler struct {
	service   reference.ReferenceUseCase
	paginator Paginator
	imageURL  imageURL
}

func NewReferenceHandler(service reference.ReferenceUseCase, paginator Paginator, mediaURL func(string) string) *ReferenceHandler {
	return &ReferenceHandler{service: service, paginator: paginator, imageURL: mediaURL}
}

func (h *ReferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/countries", h.listCountries)
	router.POST("/countries", h.createCountry)
	router.GET("/cities", h.listCities)
	router.POST("/cities", h.createCity)
	router.GET("/crew_positions", h.listCrewPositions)
	router.POST("/crew_positions", h.createCrewPosition)
	router.GET("/crews", h.listCrews)
	router.POST("/crews", h.createCrew)
	router.GET("/airplane_types", h.listAirplaneTypes)
	router.POST("/airplane_types", h.createAirplaneType)
	router.POST("/airplane_types/:id/upload-image", auth.StaffOnly(), h.uploadAirplaneTypeImage)
	router.GET("/airplanes", h.listAirplanes)
	router.POST("/airplanes", h.createAirplane)
	router.GET("/airports", h.listAirports)
	router.POST("/airports", h.createAirport)
	router.POST("/airports/:id/upload-image", auth.StaffOnly(), h.uploadAirportImage)
	router.GET("/routes", h.listRoutes)
	router.POST("/routes", h.createRoute)
}

type nameRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type cityRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Country int64  `json:"country" binding:"required,gt=0"`
}

type crewRequest struct {
	FirstName string `json:"first_name" binding:"required,max=255"`
	LastName  string `json:"last_name" binding:"required,max=255"`
	Position  *int64 `json:"position" binding:"omitempty,gt=0"`
}

type airplaneRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType int64  `json:"airplane_type" binding:"required,gt=0"`
}

type airportRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	ClosestBigCity int64  `json:"closest_big_city" binding:"required,gt=0"`
}

type routeRequest struct {
	Source      int64 `json:"source" binding:"required,gt=0"`
	Destination int64 `json:"destination" binding:"required,gt=0"`
	Distance    int   `json:"distance"`
}

func (h *ReferenceHandler) listCountries(c *gin.Context) {
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	countries, total, err := h.service.ListCountries(c.Request.Context(), req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(countries, func(v domain.Country) countryView {
		return countryView{ID: v.ID, Name: v.Name}
	}), len(countries), total)
}

func (h *ReferenceHandler) createCountry(c *gin.Context) {
	var body nameRequest
	if !bindJSON(c, &body) {
		return
	}
	country := domain.Country{Name: body.Name}
	if err := h.service.CreateCountry(c.Request.Context(), &country); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, countryView{ID: country.ID, Name: country.Name})
}

func (h *ReferenceHandler) listCities(c *gin.Context) {
	q := newQueryParser(c)
	filter := domain.CityFilter{CountryID: q.id("country")}
	if err := q.err(); err != nil {
		respondError(c, err)
		return
	}
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	cities, total, err := h.service.ListCities(c.Request.Context(), filter, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(cities, newCityListView), len(cities), total)
}

func (h *ReferenceHandler) createCity(c *gin.Context) {
	var body cityRequest
	if !bindJSON(c, &body) {
		return
	}
	city := domain.City{Name: body.Name, CountryID: body.Country}
	if err := h.service.CreateCity(c.Request.Context(), &city); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cityWriteView{ID: city.ID, Name: city.Name, Country: city.CountryID})
}

func (h *ReferenceHandler) listCrewPositions(c *gin.Context) {
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	positions, total, err := h.service.ListCrewPositions(c.Request.Context(), req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(positions, func(v domain.CrewPosition) crewPositionView {
		return crewPositionView{ID: v.ID, Name: v.Name}
	}), len(positions), total)
}

func (h *ReferenceHandler) createCrewPosition(c *gin.Context) {
	var body nameRequest
	if !bindJSON(c, &body) {
		return
	}
	position := domain.CrewPosition{Name: body.Name}
	if err := h.service.CreateCrewPosition(c.Request.Context(), &position); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewPositionView{ID: position.ID, Name: position.Name})
}

func (h *ReferenceHandler) listCrews(c *gin.Context) {
	q := newQueryParser(c)
	filter := domain.CrewFilter{PositionID: q.id("position")}
	if err := q.err(); err != nil {
		respondError(c, err)
		return
	}
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	crews, total, err := h.service.ListCrews(c.Request.Context(), filter, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(crews, newCrewListView), len(crews), total)
}

func (h *ReferenceHandler) createCrew(c *gin.Context) {
	var body crewRequest
	if !bindJSON(c, &body) {
		return
	}
	crew := domain.Crew{FirstName: body.FirstName, LastName: body.LastName, PositionID: body.Position}
	if err := h.service.CreateCrew(c.Request.Context(), &crew); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crewWriteView{ID: crew.ID, FirstName: crew.FirstName, LastName: crew.LastName, Position: crew.PositionID})
}

func (h *ReferenceHandler) listAirplaneTypes(c *gin.Context) {
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	types, total, err := h.service.ListAirplaneTypes(c.Request.Context(), req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(types, h.airplaneTypeView), len(types), total)
}

func (h *ReferenceHandler) createAirplaneType(c *gin.Context) {
	var body nameRequest
	if !bindJSON(c, &body) {
		return
	}
	airplaneType := domain.AirplaneType{Name: body.Name}
	if err := h.service.CreateAirplaneType(c.Request.Context(), &airplaneType); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.airplaneTypeView(airplaneType))
}

func (h *ReferenceHandler) uploadAirplaneTypeImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	file, ok := formImage(c)
	if !ok {
		return
	}
	defer file.Close()

	updated, err := h.service.UploadAirplaneTypeImage(c.Request.Context(), id, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.airplaneTypeView(*updated))
}

func (h *ReferenceHandler) airplaneTypeView(t domain.AirplaneType) airplaneTypeView {
	return airplaneTypeView{ID: t.ID, Name: t.Name, Image: h.imageURL.of(t.Image)}
}

func (h *ReferenceHandler) listAirplanes(c *gin.Context) {
	req, err := h.paginator.parse(c)
	if err != nil {
		respondError(c, err)
		return
	}
	airplanes, total, err := h.service.ListAirplanes(c.Request.Context(), req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(airplanes, newAirplaneListView), len(airplanes), total)
}

func (h *ReferenceHandler) createAirplane(c *gin.Context) {
	var body airplaneRequest
	if !bindJSON(c, &body) {
		return
	}
	airplane := domain.Airplane{Name: body.Name, Rows: body.Rows, SeatsInRow: body.SeatsInRow, AirplaneTypeID: body.AirplaneType}
	if err := h.service.CreateAirplane(c.Request.Context(), &airplane); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplaneWriteView{
		ID:           airplane.ID,
		Name:         airplane.Name,
		Rows:         airplane.Rows,
		SeatsInRow:   airplane.SeatsInRow,
		AirplaneType: airplane.AirplaneTypeID,
	})
}

func (h *ReferenceHandler) listAirports(c *gin.Context) {
	q := newQueryParser(c)
	filter := domain.AirportFilter{
		Name:      c.Query("name"),
		CountryID: q.id("country"),
		CityID:    q.id("city"),
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
	airports, total, err := h.service.ListAirports(c.Request.Context(), filter, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(airports, func(a domain.AirportView) airportListView {
		return newAirportListView(a, h.imageURL)
	}), len(airports), total)
}

func (h *ReferenceHandler) createAirport(c *gin.Context) {
	var body airportRequest
	if !bindJSON(c, &body) {
		return
	}
	airport := domain.Airport{Name: body.Name, ClosestCityID: body.ClosestBigCity}
	if err := h.service.CreateAirport(c.Request.Context(), &airport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportWriteView{ID: airport.ID, Name: airport.Name, ClosestBigCity: airport.ClosestCityID})
}

func (h *ReferenceHandler) uploadAirportImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	file, ok := formImage(c)
	if !ok {
		return
	}
	defer file.Close()

	updated, err := h.service.UploadAirportImage(c.Request.Context(), id, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportWriteView{
		ID:             updated.ID,
		Name:           updated.Name,
		ClosestBigCity: updated.ClosestCityID,
		Image:          h.imageURL.of(updated.Image),
	})
}

func (h *ReferenceHandler) listRoutes(c *gin.Context) {
	q := newQueryParser(c)
	filter := domain.RouteFilter{
		SourceID:      q.id("source"),
		DestinationID: q.id("destination"),
		FromCountryID: q.id("from_country"),
		ToCountryID:   q.id("to_country"),
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
	routes, total, err := h.service.ListRoutes(c.Request.Context(), filter, req.page)
	if err != nil {
		respondError(c, err)
		return
	}
	h.paginator.respond(c, req, mapSlice(routes, func(r domain.RouteView) routeListView {
		return newRouteListView(r, h.imageURL)
	}), len(routes), total)
}

func (h *ReferenceHandler) createRoute(c *gin.Context) {
	var body routeRequest
	if !bindJSON(c, &body) {
		return
	}
	route := domain.Route{SourceID: body.Source, DestinationID: body.Destination, Distance: body.Distance}
	if err := h.service.CreateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routeWriteView{ID: route.ID, Source: route.SourceID, Destination: route.DestinationID, Distance: route.Distance})
}
