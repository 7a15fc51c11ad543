package postgres

import (
	"strconv"
	"strings"
)

// cond is a composable SQL predicate. Fragments use '?' placeholders and
// are rendered to positional $n arguments when the query is built, so
// visibility (own-rows OR system-rows) and ownership (id AND user) filters
// stay explicit boolean compositions instead of ad-hoc string glue.
type cond struct {
	expr string
	args []any
}

// eq builds a column equality predicate.
func eq(col string, v any) cond {
	return cond{expr: col + " = ?", args: []any{v}}
}

func (c cond) empty() bool { return c.expr == "" }

// allOf joins predicates with AND, skipping empty ones.
func allOf(cs ...cond) cond { return join(" AND ", cs) }

// anyOf joins predicates with OR, skipping empty ones.
func anyOf(cs ...cond) cond { return join(" OR ", cs) }

func join(op string, cs []cond) cond {
	var kept []cond
	for _, c := range cs {
		if !c.empty() {
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return cond{}
	case 1:
		return kept[0]
	}
	exprs := make([]string, len(kept))
	var args []any
	for i, c := range kept {
		exprs[i] = "(" + c.expr + ")"
		args = append(args, c.args...)
	}
	return cond{expr: strings.Join(exprs, op), args: args}
}

// render numbers the '?' placeholders as $start, $start+1, … and returns
// the SQL fragment together with its arguments.
func (c cond) render(start int) (string, []any) {
	var b strings.Builder
	n := start
	for i := 0; i < len(c.expr); i++ {
		if c.expr[i] == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		b.WriteByte(c.expr[i])
	}
	return b.String(), c.args
}
