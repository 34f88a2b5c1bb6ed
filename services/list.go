package services

import (
	"strings"

	"github.com/Kariqs/amexan-eats-api/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var (
	restaurantSortColumns = map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	}
	foodSortColumns = map[string]string{
		"name":      "name",
		"price":     "price",
		"createdAt": "created_at",
	}
)

// ListParams is the raw list query as it arrives from the query string.
type ListParams struct {
	Keyword string
	Sort    string
	Order   string
	Page    int
	Limit   int
}

// Page is one page of list results plus the metadata clients need to page on.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func (p ListParams) query(columns map[string]string) (repository.ListQuery, error) {
	q := repository.ListQuery{
		Keyword:    strings.TrimSpace(p.Keyword),
		SortColumn: "created_at",
		Desc:       true,
		Page:       p.Page,
		Limit:      p.Limit,
	}

	if p.Sort != "" {
		column, ok := columns[p.Sort]
		if !ok {
			return q, validationf("cannot sort by %q", p.Sort)
		}
		q.SortColumn = column
	}

	switch strings.ToLower(p.Order) {
	case "":
	case "asc":
		q.Desc = false
	case "desc":
		q.Desc = true
	default:
		return q, validationf("order must be asc or desc")
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	return q, nil
}
