package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/domain"
	"github.com/gin-gonic/gin"
)

// Paginator reads ?page=&limit= and renders paginated envelopes.
type Paginator struct {
	defaultLimit int
	maxLimit     int
}

func NewPaginator(cfg config.PaginationConfig) Paginator {
	return Paginator{defaultLimit: cfg.DefaultLimit, maxLimit: cfg.MaxLimit}
}

type pageRequest struct {
	number int
	page   domain.Page
}

type pageResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func (p Paginator) parse(c *gin.Context) (pageRequest, error) {
	verr := &domain.ValidationError{}

	number := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("page", "a valid positive integer is required")
		}
		number = n
	}

	limit := p.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			verr.Add("limit", "a valid positive integer is required")
		}
		limit = n
	}
	if err := verr.OrNil(); err != nil {
		return pageRequest{}, err
	}
	if p.maxLimit > 0 && limit > p.maxLimit {
		limit = p.maxLimit
	}
	if number-1 > math.MaxInt/limit {
		return pageRequest{}, domain.NewValidationError("page", "page number is too large")
	}

	return pageRequest{
		number: number,
		page:   domain.Page{Limit: limit, Offset: (number - 1) * limit},
	}, nil
}

// respond writes the envelope. An empty page past the first is reported as
// 404, like an out of range page.
func (p Paginator) respond(c *gin.Context, req pageRequest, results any, size, total int) {
	if size == 0 && req.number > 1 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Invalid page."})
		return
	}

	resp := pageResponse{Count: total, Results: results}
	if req.page.Offset+size < total {
		resp.Next = pageURL(c, req.number+1)
	}
	if req.number > 1 {
		resp.Previous = pageURL(c, req.number-1)
	}
	c.JSON(http.StatusOK, resp)
}

func pageURL(c *gin.Context, number int) *string {
	u := url.URL{
		Scheme: requestScheme(c),
		Host:   c.Request.Host,
		Path:   c.Request.URL.Path,
	}
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(number))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
