package utils

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 200
)

var filterOperators = map[string]string{
	"gte": ">=",
	"gt":  ">",
	"lte": "<=",
	"lt":  "<",
}

var reservedQueryKeys = map[string]bool{
	"sort":   true,
	"page":   true,
	"limit":  true,
	"fields": true,
}

// APIFeatures translates request query parameters into GORM query
// modifiers: filtering (with gte/gt/lte/lt operators), sorting, field
// selection and pagination. Column names are checked against a whitelist
// so query strings can never inject arbitrary SQL.
type APIFeatures struct {
	params  map[string]string
	allowed map[string]bool
	page    int
	limit   int
}

// NewAPIFeatures builds a translator for one request. params is the raw
// query map; allowed lists the column names filtering/sorting/selection
// may reference.
func NewAPIFeatures(params map[string]string, allowed ...string) *APIFeatures {
	f := &APIFeatures{
		params:  params,
		allowed: make(map[string]bool, len(allowed)),
		page:    DefaultPage,
		limit:   DefaultLimit,
	}
	for _, col := range allowed {
		f.allowed[col] = true
	}

	if v, err := strconv.Atoi(params["page"]); err == nil && v >= 1 {
		f.page = v
	}
	if v, err := strconv.Atoi(params["limit"]); err == nil && v >= 1 && v <= MaxLimit {
		f.limit = v
	}

	return f
}

// Filter applies equality and range conditions from the query string.
// `?genre=Drama` becomes `genre = 'Drama'`; `?imdb_rating[gte]=8` becomes
// `imdb_rating >= '8'`. Unknown columns and reserved keys are skipped.
func (f *APIFeatures) Filter(db *gorm.DB) *gorm.DB {
	for key, value := range f.params {
		if reservedQueryKeys[key] || value == "" {
			continue
		}

		column, op := splitFilterKey(key)
		if !f.allowed[column] {
			continue
		}

		db = db.Where(fmt.Sprintf("%s %s ?", column, op), value)
	}
	return db
}

// Sort applies `?sort=a,-b` ordering; defaults to newest first.
func (f *APIFeatures) Sort(db *gorm.DB) *gorm.DB {
	raw := strings.TrimSpace(f.params["sort"])
	if raw == "" {
		return db.Order("created_at DESC")
	}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		desc := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		if !f.allowed[field] {
			continue
		}
		if desc {
			db = db.Order(field + " DESC")
		} else {
			db = db.Order(field + " ASC")
		}
	}
	return db
}

// Fields narrows the selected columns per `?fields=a,b`. The primary key is
// always included so associations keep working.
func (f *APIFeatures) Fields(db *gorm.DB) *gorm.DB {
	raw := strings.TrimSpace(f.params["fields"])
	if raw == "" {
		return db
	}

	selected := []string{"id"}
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if f.allowed[field] {
			selected = append(selected, field)
		}
	}
	if len(selected) == 1 {
		return db
	}
	return db.Select(selected)
}

// Paginate applies page/limit windowing.
func (f *APIFeatures) Paginate(db *gorm.DB) *gorm.DB {
	offset := (f.page - 1) * f.limit
	return db.Offset(offset).Limit(f.limit)
}

// Apply chains filter, sort, field selection and pagination in the order the
// original API used them.
func (f *APIFeatures) Apply(db *gorm.DB) *gorm.DB {
	return f.Paginate(f.Fields(f.Sort(f.Filter(db))))
}

// Meta reports the pagination metadata for a response envelope.
func (f *APIFeatures) Meta(total int64) PaginationMeta {
	return PaginationMeta{Page: f.page, Limit: f.limit, Total: total}
}

func splitFilterKey(key string) (column, op string) {
	open := strings.IndexByte(key, '[')
	if open == -1 || !strings.HasSuffix(key, "]") {
		return key, "="
	}

	column = key[:open]
	name := key[open+1 : len(key)-1]
	if sqlOp, ok := filterOperators[name]; ok {
		return column, sqlOp
	}
	return column, "="
}
