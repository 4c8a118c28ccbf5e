package board

// Special filter values accepted by ParseFilter.
const (
	FilterAll           = "all"
	FilterMySubmissions = "my-submissions"
)

// Filter narrows a feedback listing. The zero value matches everything.
type Filter struct {
	Category Category
	Status   Status
	UserID   string
}

// ParseFilter reads the single filter value used by the feed: "all", a
// category code, a status code or "my-submissions". Unknown values, and
// "my-submissions" without an identity, match everything.
func ParseFilter(raw string, who *Identity) Filter {
	switch {
	case raw == FilterMySubmissions:
		if who != nil && who.UserID != "" {
			return Filter{UserID: who.UserID}
		}
	case Category(raw).Valid():
		return Filter{Category: Category(raw)}
	case Status(raw).Valid():
		return Filter{Status: Status(raw)}
	}
	return Filter{}
}

// Match reports whether fb passes the filter.
func (f Filter) Match(fb Feedback) bool {
	if f.Category != "" && fb.Category != f.Category {
		return false
	}
	if f.Status != "" && fb.Status != f.Status {
		return false
	}
	if f.UserID != "" && fb.UserID != f.UserID {
		return false
	}
	return true
}
