package user

import (
	"errors"
	"regexp"
	"strings"
)

// RoleCode identifies what an operator may do with the catalog.
type RoleCode string

const (
	RoleCodeAdmin  RoleCode = "ADMIN"
	RoleCodeEditor RoleCode = "EDITOR"
	RoleCodeViewer RoleCode = "VIEWER"
)

var roleCodeRegexp = regexp.MustCompile(`^[A-Z0-9_]{3,64}$`)

func (c RoleCode) IsValid() bool {
	return roleCodeRegexp.MatchString(string(c))
}

// CanWriteCatalog reports whether the role may save or delete products.
func (c RoleCode) CanWriteCatalog() bool {
	return c == RoleCodeAdmin || c == RoleCodeEditor
}

var ErrInvalidRoleCode = errors.New("invalid role code")

// ParseRoleCode converts a request or database value into a RoleCode.
func ParseRoleCode(s string) (RoleCode, error) {
	c := RoleCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidRoleCode
	}
	return c, nil
}
