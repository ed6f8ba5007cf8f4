// Package filter compiles expr expressions into predicates over
// normalized films. Filtering always happens after the fetch, on the
// already-normalized records; the fetcher itself never filters.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/filmdex/filmdex/swapi"
)

// Filter represents a compiled expr filter
type Filter struct {
	program    *vm.Program
	expression string
}

// helperFunctions are available in every filter expression.
func helperFunctions() map[string]any {
	return map[string]any{
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers
		"year": func(dateStr string) int {
			if len(dateStr) < 4 {
				return 0
			}
			y, _ := strconv.Atoi(dateStr[:4])
			return y
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}

// Compile compiles an expr filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate evaluates the filter against a film. A non-boolean result or
// a runtime error counts as no match.
func (f *Filter) Evaluate(film swapi.Film) bool {
	env := helperFunctions()
	env["Film"] = film
	env["ID"] = film.ID
	env["Episode"] = film.ID
	env["Title"] = film.Title
	env["OpeningText"] = film.OpeningText
	env["ReleaseDate"] = film.ReleaseDate
	env["Director"] = film.Director
	env["Producer"] = film.Producer

	result, err := vm.Run(f.program, env)
	if err != nil {
		return false
	}

	match, ok := result.(bool)
	return ok && match
}

// Apply returns the films matching the filter, in their original order.
func (f *Filter) Apply(films []swapi.Film) []swapi.Film {
	var matched []swapi.Film
	for _, film := range films {
		if f.Evaluate(film) {
			matched = append(matched, film)
		}
	}
	return matched
}
