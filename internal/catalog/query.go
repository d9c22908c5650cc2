package catalog

import (
	"fmt"

	"floppotron-api/internal/domain/music"

	"gorm.io/gorm"
)

// sqlOperators is the closed set of filter operators. Anything outside it
// is rejected during validation, never passed to the store.
var sqlOperators = map[Operator]string{
	OpEq:   "=",
	OpNe:   "!=",
	OpGt:   ">",
	OpLt:   "<",
	OpGe:   ">=",
	OpLe:   "<=",
	OpLike: "LIKE",
}

// buildListQuery applies the filter, ordering and pagination of params to
// q. Field names are resolved through the entity's FieldSet before any SQL
// is assembled; values are always bound as placeholders.
func buildListQuery(q *gorm.DB, fields music.FieldSet, params ListParams) (*gorm.DB, error) {
	if params.Filter != nil {
		f := params.Filter

		col, ok := fields.Column(f.Field)
		if !ok {
			return nil, &FieldNotFoundError{Entity: fields.Entity, Field: f.Field}
		}

		op := f.Op
		if op == "" {
			op = OpEq
		}
		sqlOp, ok := sqlOperators[op]
		if !ok {
			return nil, &InvalidOperatorError{Op: op}
		}

		q = q.Where(fmt.Sprintf("%s %s ?", col, sqlOp), f.Value)
	}

	if len(params.Order) == 0 {
		q = q.Order("id")
	} else {
		for _, key := range params.Order {
			col, ok := fields.Column(key.Field)
			if !ok {
				return nil, &FieldNotFoundError{Entity: fields.Entity, Field: key.Field}
			}
			if key.Direction == "desc" {
				q = q.Order(col + " DESC")
			} else {
				q = q.Order(col)
			}
		}
		// trailing id key keeps pagination deterministic across ties
		q = q.Order("id")
	}

	return q.Limit(params.limit()).Offset(params.pageStart()), nil
}

// validateChanges checks an update's keys against the entity's immutable
// set and declared fields, returning the column-keyed change map. It runs
// before any store access so a rejected update has no partial effect.
func validateChanges(fields music.FieldSet, changes map[string]interface{}) (map[string]interface{}, error) {
	cols := make(map[string]interface{}, len(changes))
	for field, value := range changes {
		if fields.Immutable(field) {
			return nil, &FieldNotModifiableError{Field: field}
		}
		col, ok := fields.Column(field)
		if !ok {
			return nil, &FieldNotFoundError{Entity: fields.Entity, Field: field}
		}
		cols[col] = value
	}
	return cols, nil
}
