package repository

import (
	"strings"

	"gorm.io/gorm"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListOptions narrows and orders a list query. Zero value lists every row by id.
type ListOptions struct {
	Title string
	Sort  string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (o ListOptions) apply(query *gorm.DB) *gorm.DB {
	if o.Title != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(o.Title)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	switch o.Sort {
	case SortAsc:
		query = query.Order("title asc")
	case SortDesc:
		query = query.Order("title desc")
	}

	return query.Order("id asc")
}
