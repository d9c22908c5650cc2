package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	DefaultLimit  = 5
	DefaultOffset = 1
)

// Operator is one of the supported filter comparison operators.
type Operator string

const (
	OpEq   Operator = "="
	OpNe   Operator = "!="
	OpGt   Operator = ">"
	OpLt   Operator = "<"
	OpGe   Operator = ">="
	OpLe   Operator = "<="
	OpLike Operator = "like"
)

// Filter is a single declarative predicate applied during listing.
type Filter struct {
	Field string      `json:"field"`
	Op    Operator    `json:"op"`
	Value interface{} `json:"value"`
}

// OrderKey sorts by one field; any direction other than "desc" is
// ascending.
type OrderKey struct {
	Field     string
	Direction string
}

// OrderSpec is the ordered list of sort keys: first key is the primary
// sort, later keys break ties.
type OrderSpec []OrderKey

// UnmarshalJSON decodes a JSON object such as {"born_year": "desc"} while
// keeping the order keys appear in, which a plain map would lose.
func (o *OrderSpec) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("order must be a JSON object, got %v", tok)
	}

	keys := OrderSpec{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("order key must be a string, got %v", tok)
		}

		var dir string
		if err := dec.Decode(&dir); err != nil {
			return fmt.Errorf("order direction for %q must be a string: %w", field, err)
		}
		keys = append(keys, OrderKey{Field: field, Direction: dir})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = keys
	return nil
}

// ListParams describes one page of a listing: limit/offset pagination with
// optional ordering and a single optional filter predicate.
type ListParams struct {
	Limit  int
	Offset int
	Order  OrderSpec
	Filter *Filter
}

func (p ListParams) limit() int {
	if p.Limit < 1 {
		return DefaultLimit
	}
	return p.Limit
}

// offset is 1-based: offset=1 is the first page.
func (p ListParams) pageStart() int {
	offset := p.Offset
	if offset < 1 {
		offset = DefaultOffset
	}
	return (offset - 1) * p.limit()
}
