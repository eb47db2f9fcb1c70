package browse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SortField is a listing sort key. Values are the service's sortBy tokens.
type SortField string

const (
	SortName        SortField = "name"
	SortAuthor      SortField = "authorName"
	SortIngredients SortField = "ingredientCount"
	SortSkill       SortField = "skillLevel"
)

// SortFields lists the sort keys in column order.
var SortFields = []SortField{SortName, SortAuthor, SortIngredients, SortSkill}

// ParseSortField accepts a short alias ("author") or the wire token
// ("authorName").
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortName, nil
	case "author", "authorname":
		return SortAuthor, nil
	case "ingredients", "ingredientcount":
		return SortIngredients, nil
	case "skill", "skilllevel":
		return SortSkill, nil
	}
	return "", fmt.Errorf("unknown sort field %q (expected name, author, ingredients or skill)", s)
}

// Label is the column heading for the field.
func (f SortField) Label() string {
	switch f {
	case SortAuthor:
		return "Author"
	case SortIngredients:
		return "# of Ingr."
	case SortSkill:
		return "Skill Level"
	default:
		return "Name"
	}
}

// SortDirection is the wire sortOrder.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Arrow renders the direction as a heading marker.
func (d SortDirection) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// FilterSet is an insertion-ordered set of ingredient names.
type FilterSet struct {
	names []string
}

// NewFilterSet builds a set from names, dropping blanks and duplicates.
func NewFilterSet(names ...string) FilterSet {
	var f FilterSet
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" && !f.Has(n) {
			f.names = append(f.names, n)
		}
	}
	return f
}

// Toggle adds name when absent and removes it when present. It reports
// whether name is active afterwards. Blank names are ignored.
func (f *FilterSet) Toggle(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i:i], f.names[i+1:]...)
			return false
		}
	}
	f.names = append(f.names, name)
	return true
}

// Has reports membership.
func (f FilterSet) Has(name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range f.names {
		if n == name {
			return true
		}
	}
	return false
}

// Values returns a copy of the names in insertion order.
func (f FilterSet) Values() []string {
	return append([]string(nil), f.names...)
}

// Len is the number of active filters.
func (f FilterSet) Len() int { return len(f.names) }

// String joins the names with commas, the ingredientFilters wire format.
func (f FilterSet) String() string { return strings.Join(f.names, ",") }

// ListingQuery is the state that drives the recipe listing.
type ListingQuery struct {
	Page      int
	Sort      SortField
	Direction SortDirection
	Search    string
	Filters   FilterSet
}

// DefaultListingQuery is page 1 sorted by name ascending, unfiltered.
func DefaultListingQuery() ListingQuery {
	return ListingQuery{Page: 1, Sort: SortName, Direction: Ascending}
}

// Clone returns a copy that shares no memory with q.
func (q ListingQuery) Clone() ListingQuery {
	q.Filters = FilterSet{names: q.Filters.Values()}
	return q
}

// Params encodes the query for GET /Recipes. searchQuery and
// ingredientFilters are only present when set.
func (q ListingQuery) Params() url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}
	sort := q.Sort
	if sort == "" {
		sort = SortName
	}
	dir := q.Direction
	if dir == "" {
		dir = Ascending
	}
	v := url.Values{}
	v.Set("pageNumber", strconv.Itoa(page))
	v.Set("sortBy", string(sort))
	v.Set("sortOrder", string(dir))
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("searchQuery", s)
	}
	if q.Filters.Len() > 0 {
		v.Set("ingredientFilters", q.Filters.String())
	}
	return v
}

// AuthorListingQuery drives the author drill-down.
type AuthorListingQuery struct {
	Author string
	Page   int
}

// PageCount is ceil(total / size); zero when either is not positive.
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage bounds n to [1, pages]. With pages unknown (zero) only the lower
// bound applies.
func ClampPage(n, pages int) int {
	if pages > 0 && n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	return n
}
