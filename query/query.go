// Package query implements the shared list engine behind every admin table:
// filter composition, relation-aware joins, sort allow-listing and pagination.
// Each entity contributes a Spec; controllers pass request params through Run.
package query

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Sentinel filter value meaning "do not filter on this dimension".
const All = "all"

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

// Meta is the pagination block returned with every list response.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Range holds inclusive bounds; an empty bound is unbounded. Values are kept
// as strings and passed as query arguments so numeric and ISO-date columns
// both compare correctly in the store.
type Range struct {
	From string
	To   string
}

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// expandDayBound widens a date-only upper bound to the end of that day, so
// an inclusive To date keeps rows stamped later the same day when the column
// stores a full datetime.
func expandDayBound(v string) string {
	if dateOnly.MatchString(v) {
		return v + " 23:59:59"
	}
	return v
}

// Params is the normalized request for one page of one entity.
type Params struct {
	Page      int
	Limit     int
	Query     string
	Equals    map[string]string
	Ranges    map[string]Range
	SortBy    string
	SortOrder string
}

// FilterKind distinguishes how a filter key maps onto predicates.
type FilterKind int

const (
	KindEquals FilterKind = iota
	KindRange
)

// Filter binds an exposed filter key to a qualified column. Relation names
// the join the column lives behind; empty means the primary table.
type Filter struct {
	Column   string
	Relation string
	Kind     FilterKind
}

// Join declares one step of an entity's fixed relation chain. Parent chains
// joins upward so a filter deep in the chain pulls in every hop above it.
type Join struct {
	Name   string
	Clause string
	Parent string
}

// Column is a searchable column, possibly behind a relation.
type Column struct {
	Column   string
	Relation string
}

// Spec is the static query surface of one entity.
type Spec struct {
	Table         string
	DefaultSort   string
	SortColumns   map[string]string
	SortJoins     map[string][]string // relations a sort key depends on
	SearchColumns []Column
	Joins         []Join
	Filters       map[string]Filter
}

// ParseParams reads pagination, search, sort and every filter key the spec
// declares from the request query string. Range filters read key+"From" and
// key+"To".
func ParseParams(r *http.Request, spec Spec) Params {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	p := Params{
		Page:      page,
		Limit:     limit,
		Query:     strings.TrimSpace(q.Get("query")),
		Equals:    make(map[string]string),
		Ranges:    make(map[string]Range),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	for key, f := range spec.Filters {
		switch f.Kind {
		case KindEquals:
			if v := q.Get(key); v != "" {
				p.Equals[key] = v
			}
		case KindRange:
			from := strings.TrimSpace(q.Get(key + "From"))
			to := strings.TrimSpace(q.Get(key + "To"))
			if from != "" || to != "" {
				p.Ranges[key] = Range{From: from, To: to}
			}
		}
	}
	return p
}

// PageCount implements the pagination invariant: ceil(total/limit), zero when
// the set is empty.
func PageCount(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// skip reports whether a filter value is the "no filter" sentinel.
func skip(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

// Run executes the spec against db (already scoped to the entity's model),
// writes the page into dest and returns pagination metadata. Store errors are
// returned, never panicked; callers shape them into the response envelope.
func Run(db *gorm.DB, spec Spec, p Params, dest interface{}) (Meta, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	tx := db
	required := make(map[string]bool)

	for key, val := range p.Equals {
		f, ok := spec.Filters[key]
		if !ok || f.Kind != KindEquals || skip(val) {
			continue
		}
		requireChain(spec, f.Relation, required)
		tx = tx.Where(f.Column+" = ?", val)
	}

	for key, rg := range p.Ranges {
		f, ok := spec.Filters[key]
		if !ok || f.Kind != KindRange {
			continue
		}
		if rg.From == "" && rg.To == "" {
			continue
		}
		requireChain(spec, f.Relation, required)
		if rg.From != "" {
			tx = tx.Where(f.Column+" >= ?", rg.From)
		}
		if rg.To != "" {
			tx = tx.Where(f.Column+" <= ?", expandDayBound(rg.To))
		}
	}

	if p.Query != "" && len(spec.SearchColumns) > 0 {
		like := "%" + strings.ToLower(p.Query) + "%"
		conds := make([]string, 0, len(spec.SearchColumns))
		args := make([]interface{}, 0, len(spec.SearchColumns))
		for _, sc := range spec.SearchColumns {
			requireChain(spec, sc.Relation, required)
			conds = append(conds, "LOWER("+sc.Column+") LIKE ?")
			args = append(args, like)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}

	col, sorted := spec.SortColumns[p.SortBy]
	if !sorted {
		col = spec.DefaultSort
	} else {
		for _, rel := range spec.SortJoins[p.SortBy] {
			requireChain(spec, rel, required)
		}
	}

	// A filter on a joined column forces that relation (and everything above
	// it) into the query as an inner join; unfiltered relations stay as
	// preloads so rows with missing optional relations are not dropped.
	joined := false
	for _, j := range spec.Joins {
		if required[j.Name] {
			tx = tx.Joins(j.Clause)
			joined = true
		}
	}
	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Meta{}, err
	}

	// Joined tables duplicate column names, so the row fetch is restricted
	// to the primary table's columns. Count must not see this select: gorm
	// rewrites a single-column select into count(<column>), which is invalid
	// for a table.* expression.
	if joined {
		tx = tx.Select(spec.Table + ".*")
	}

	dir := "ASC"
	if strings.EqualFold(p.SortOrder, "desc") {
		dir = "DESC"
	}

	offset := (p.Page - 1) * p.Limit
	if err := tx.Order(col + " " + dir).Offset(offset).Limit(p.Limit).Find(dest).Error; err != nil {
		return Meta{}, err
	}

	return Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: PageCount(total, p.Limit),
	}, nil
}

// requireChain marks a relation and all of its ancestors as required joins.
func requireChain(spec Spec, name string, required map[string]bool) {
	for name != "" && !required[name] {
		required[name] = true
		name = parentOf(spec, name)
	}
}

func parentOf(spec Spec, name string) string {
	for _, j := range spec.Joins {
		if j.Name == name {
			return j.Parent
		}
	}
	return ""
}
