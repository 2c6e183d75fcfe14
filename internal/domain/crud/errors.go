package crud

import "errors"

var (
	ErrUnknownSortProperty  = errors.New("unknown sort property")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrUnsupportedMatcher   = errors.New("unsupported matcher")
	ErrUnknownFilterType    = errors.New("unknown filter type")
	ErrMalformedFilter      = errors.New("malformed filter")
	ErrInvalidFilterValue   = errors.New("invalid filter value")
	ErrInvalidPage          = errors.New("invalid page request")
)

// IsInvalidInput reports whether err was caused by a malformed list request.
func IsInvalidInput(err error) bool {
	switch {
	case errors.Is(err, ErrUnknownSortProperty),
		errors.Is(err, ErrInvalidSortDirection),
		errors.Is(err, ErrUnsupportedMatcher),
		errors.Is(err, ErrUnknownFilterType),
		errors.Is(err, ErrMalformedFilter),
		errors.Is(err, ErrInvalidFilterValue),
		errors.Is(err, ErrInvalidPage):
		return true
	default:
		return false
	}
}
