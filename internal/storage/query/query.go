// Package query provides composable filter predicates and sort keys that the
// storage layer compiles to parameterized SQL. Fields are resolved through a
// per-entity column whitelist, so a predicate can never inject raw SQL.
package query

import (
	"fmt"
	"strings"
)

// Op is a comparison operator supported by the store.
type Op string

const (
	// OpEq matches rows where the field equals the value.
	OpEq Op = "="
	// OpGte matches rows where the field is greater than or equal to the value.
	OpGte Op = ">="
	// OpLte matches rows where the field is less than or equal to the value.
	OpLte Op = "<="
)

// Predicate is a filter expression over entity fields: either a single
// comparison or a conjunction of other predicates.
type Predicate struct {
	Value any
	Field string
	Op    Op
	conj  []*Predicate
}

// Eq builds an equality predicate.
func Eq(field string, value any) *Predicate {
	return &Predicate{Field: field, Op: OpEq, Value: value}
}

// Gte builds a greater-than-or-equal predicate.
func Gte(field string, value any) *Predicate {
	return &Predicate{Field: field, Op: OpGte, Value: value}
}

// Lte builds a less-than-or-equal predicate.
func Lte(field string, value any) *Predicate {
	return &Predicate{Field: field, Op: OpLte, Value: value}
}

// And combines predicates into a conjunction. Nil members are skipped; an
// all-nil conjunction behaves like no predicate at all.
func And(preds ...*Predicate) *Predicate {
	kept := make([]*Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return &Predicate{conj: kept}
}

// SortKey orders results by a single field.
type SortKey struct {
	Field     string
	Ascending bool
}

// Asc builds an ascending sort key.
func Asc(field string) SortKey {
	return SortKey{Field: field, Ascending: true}
}

// Desc builds a descending sort key.
func Desc(field string) SortKey {
	return SortKey{Field: field, Ascending: false}
}

// SQL compiles the predicate into a WHERE clause fragment and its arguments.
// columns maps entity field names to table columns; unknown fields are an
// error. A nil predicate compiles to an empty clause.
func (p *Predicate) SQL(columns map[string]string) (string, []any, error) {
	if p == nil {
		return "", nil, nil
	}

	if len(p.conj) > 0 {
		clauses := make([]string, 0, len(p.conj))
		var args []any
		for _, child := range p.conj {
			clause, childArgs, err := child.SQL(columns)
			if err != nil {
				return "", nil, err
			}
			if clause == "" {
				continue
			}
			clauses = append(clauses, clause)
			args = append(args, childArgs...)
		}
		if len(clauses) == 0 {
			return "", nil, nil
		}
		return "(" + strings.Join(clauses, " AND ") + ")", args, nil
	}

	column, ok := columns[p.Field]
	if !ok {
		return "", nil, fmt.Errorf("unknown query field: %q", p.Field)
	}

	switch p.Op {
	case OpEq, OpGte, OpLte:
		return fmt.Sprintf("%s %s ?", column, p.Op), []any{p.Value}, nil
	default:
		return "", nil, fmt.Errorf("unknown query operator: %q", p.Op)
	}
}

// OrderBy compiles sort keys into an ORDER BY clause body. An empty key list
// compiles to an empty clause.
func OrderBy(keys []SortKey, columns map[string]string) (string, error) {
	if len(keys) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		column, ok := columns[key.Field]
		if !ok {
			return "", fmt.Errorf("unknown sort field: %q", key.Field)
		}
		direction := "DESC"
		if key.Ascending {
			direction = "ASC"
		}
		parts = append(parts, column+" "+direction)
	}
	return strings.Join(parts, ", "), nil
}
