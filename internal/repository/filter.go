package repository

import (
	"fmt"

	"github.com/spec-kit/lab-booking-service/internal/search"
)

// filterClause translates a search.Filter into a WHERE clause over the given
// searchable column. Match-all yields no clause.
func filterClause(column string, filter search.Filter) (string, []any) {
	if filter.IsMatchAll() {
		return "", nil
	}
	pattern := "%" + filter.Keyword() + "%"
	return fmt.Sprintf(" WHERE LOWER(%s) LIKE LOWER($1)", column), []any{pattern}
}
