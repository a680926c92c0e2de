// Package exprfmt builds sheet converters and row predicates from
// expressions.
//
// A converter expression sees the cell as "value":
//
//	value * 100
//	upper(trim(value))
//
// A predicate expression sees the row position as "index" and its cells as
// "row":
//
//	row[2] > 10 && index > 0
package exprfmt

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

type config struct {
	log      logrus.FieldLogger
	fallback any
}

// Option configures compiled expressions.
type Option func(*config)

// WithLogger reports evaluation failures to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) { c.log = log }
}

// WithFallback sets the cell value produced when evaluation fails.
// Defaults to sheets.NA.
func WithFallback(v any) Option {
	return func(c *config) { c.fallback = v }
}

func newConfig(opts []Option) *config {
	c := &config{log: logrus.StandardLogger(), fallback: sheets.NA}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns a converter evaluating code once per cell.
func Compile(code string, opts ...Option) (sheets.Converter, error) {
	c := newConfig(opts)
	program, err := expr.Compile(strings.TrimSpace(code),
		expr.Env(map[string]any{"value": nil}),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return sheets.Converter{}, fmt.Errorf("exprfmt: compile %q: %w", code, err)
	}
	return sheets.Using(func(value any) any {
		out, err := expr.Run(program, map[string]any{"value": value})
		if err != nil {
			c.log.WithError(err).WithField("expr", code).Warn("exprfmt: evaluation failed")
			return c.fallback
		}
		return out
	}), nil
}

// CompilePredicate returns a row predicate evaluating code once per row.
// Rows whose evaluation fails are not selected.
func CompilePredicate(code string, opts ...Option) (sheets.Predicate, error) {
	c := newConfig(opts)
	program, err := expr.Compile(strings.TrimSpace(code),
		expr.Env(map[string]any{"index": 0, "row": []any{}}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("exprfmt: compile %q: %w", code, err)
	}
	return func(index int, values []any) bool {
		return matches(c, program, code, index, values)
	}, nil
}

func matches(c *config, program *vm.Program, code string, index int, values []any) bool {
	out, err := expr.Run(program, map[string]any{"index": index, "row": values})
	if err != nil {
		c.log.WithError(err).WithField("expr", code).Warn("exprfmt: evaluation failed")
		return false
	}
	ok, _ := out.(bool)
	return ok
}
