package api

import (
	"strconv"
	"time"

	"github.com/Domenick1991/airports/internal/domain"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// queryParser collects malformed query values into one validation error.
type queryParser struct {
	c    *gin.Context
	verr domain.ValidationError
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c}
}

func (q *queryParser) id(name string) *int64 {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		q.verr.Add(name, "enter a valid id")
		return nil
	}
	return &v
}

func (q *queryParser) date(name string) *time.Time {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		q.verr.Add(name, "enter a date in YYYY-MM-DD format")
		return nil
	}
	return &v
}

func (q *queryParser) err() error {
	return q.verr.OrNil()
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		respondError(c, domain.ErrNotFound)
		return 0, false
	}
	return id, true
}
