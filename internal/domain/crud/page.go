package crud

import (
	"math"
	"strings"
)

type Direction string

const (
	DirectionAsc  Direction = "ASC"
	DirectionDesc Direction = "DESC"
)

// ParseDirection accepts asc/desc in any case; empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return DirectionAsc, nil
	case "DESC":
		return DirectionDesc, nil
	default:
		return "", ErrInvalidSortDirection
	}
}

type Order struct {
	Property  string
	Direction Direction
}

func (o Order) IsAscending() bool {
	return o.Direction != DirectionDesc
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000
)

// Pageable describes the requested page. PageNumber is zero based.
type Pageable struct {
	PageNumber int
	PageSize   int
	Sort       []Order
}

// Validate rejects negative pages, oversized pages and page numbers whose
// offset would not fit in an int.
func (p Pageable) Validate() error {
	if p.PageNumber < 0 || p.PageSize < 0 || p.PageSize > MaxPageSize {
		return ErrInvalidPage
	}
	if p.PageNumber > math.MaxInt/p.Limit() {
		return ErrInvalidPage
	}
	return nil
}

func (p Pageable) Limit() int {
	if p.PageSize == 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

func (p Pageable) Offset() int {
	return p.PageNumber * p.Limit()
}
