package crud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type filterJSON struct {
	Kind       string            `json:"kind"`
	Children   []json.RawMessage `json:"children"`
	PropertyID string            `json:"propertyId"`
	Matcher    string            `json:"matcher"`
	Value      string            `json:"value"`
}

// DecodeFilter parses the wire form of a filter tree:
//
//	{"kind":"and"|"or","children":[...]}
//	{"kind":"predicate","propertyId":"...","matcher":"eq","value":"..."}
//
// An empty or null document yields a nil Filter.
func DecodeFilter(raw json.RawMessage) (Filter, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var node filterJSON
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFilter, err)
	}

	switch strings.ToLower(strings.TrimSpace(node.Kind)) {
	case "and":
		children, err := decodeChildren(node.Children)
		if err != nil {
			return nil, err
		}
		return AndFilter{Children: children}, nil
	case "or":
		children, err := decodeChildren(node.Children)
		if err != nil {
			return nil, err
		}
		return OrFilter{Children: children}, nil
	case "predicate":
		return PropertyStringFilter{
			PropertyID:  node.PropertyID,
			Matcher:     ParseMatcher(node.Matcher),
			FilterValue: node.Value,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFilterType, node.Kind)
	}
}

func decodeChildren(raw []json.RawMessage) ([]Filter, error) {
	children := make([]Filter, 0, len(raw))
	for _, r := range raw {
		child, err := DecodeFilter(r)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
