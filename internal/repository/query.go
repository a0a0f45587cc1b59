package repository

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/airports/internal/domain"
)

// where accumulates AND-ed conditions with positional arguments.
type where struct {
	conds []string
	args  []any
}

// add appends a condition; "?" in cond is replaced by the next $N placeholder.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// paginate appends LIMIT/OFFSET for the page and returns the extended args.
func (w *where) paginate(page domain.Page) (string, []any) {
	args := append([]any{}, w.args...)
	if page.Limit <= 0 {
		return "", args
	}
	args = append(args, page.Limit, page.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
