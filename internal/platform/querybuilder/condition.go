package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause, numbering its
// placeholders from argIndex onwards.
type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" = ")
	buf.WriteString(bind(args, argIndex, c.value))
}

type notBlankCondition struct {
	column string
}

// NotBlank matches rows where a text column is neither NULL nor empty.
func NotBlank(column string) Condition {
	return notBlankCondition{column: column}
}

func (c notBlankCondition) appendSQL(buf *strings.Builder, _ *[]any, _ *int) {
	buf.WriteString(c.column)
	buf.WriteString(" IS NOT NULL AND ")
	buf.WriteString(c.column)
	buf.WriteString(" <> ''")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL; each '?' is bound to the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

func appendWhereClause(buf *strings.Builder, conditions []Condition, args *[]any, argIndex *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		c.appendSQL(buf, args, argIndex)
	}
}

func bind(args *[]any, argIndex *int, value any) string {
	p := "$" + strconv.Itoa(*argIndex)
	*args = append(*args, value)
	*argIndex = *argIndex + 1
	return p
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	if len(exprArgs) == 0 {
		return expr
	}

	var out strings.Builder
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			out.WriteString(bind(args, argIndex, exprArgs[next]))
			next++
			continue
		}
		out.WriteByte(expr[i])
	}
	return out.String()
}
