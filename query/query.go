// Package query builds index query expressions for neomodel.
//
// The store's secondary indexes answer conjunctions of equality terms.
// An Expr is such a conjunction: it is built with EQ and And, carries its
// terms in a normalized string form, and renders to the legacy
// Lucene-style query syntax the index layer speaks:
//
//	q := query.And(
//	    query.EQ("name", "jim"),
//	    query.EQ("age", 3),
//	)
//	q.String() // name:"jim" AND age:"3"
//
// Only AND-composition of equality terms is supported; that is the full
// query surface the index layer requires.
package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a single equality constraint over an indexed property.
// Values are held in their canonical index encoding (see Format).
type Term struct {
	Property string
	Value    string
}

// Expr is a conjunction of equality terms.
// The zero value is the empty expression.
type Expr struct {
	terms []Term
}

// EQ returns an expression constraining property to equal value.
// The value is encoded with Format.
func EQ(property string, value any) Expr {
	return Expr{terms: []Term{{Property: property, Value: Format(value)}}}
}

// And returns the conjunction of the given expressions.
func And(exprs ...Expr) Expr {
	var e Expr
	for _, x := range exprs {
		e.terms = append(e.terms, x.terms...)
	}
	return e
}

// Terms returns the expression's terms in composition order.
func (e Expr) Terms() []Term {
	return e.terms
}

// Empty reports whether the expression has no terms.
func (e Expr) Empty() bool {
	return len(e.terms) == 0
}

// String renders the expression in Lucene query syntax.
func (e Expr) String() string {
	var sb strings.Builder
	for i, t := range e.terms {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(t.Property)
		sb.WriteString(`:"`)
		sb.WriteString(escape(t.Value))
		sb.WriteString(`"`)
	}
	return sb.String()
}

// escape backslash-escapes quotes and backslashes inside a quoted value.
func escape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Format returns the canonical index encoding of a property value.
// Node save and index query must agree on this encoding, so both go
// through Format.
func Format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
