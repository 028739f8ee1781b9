// Package infoquery evaluates jq expressions against descriptors.
//
// The input of a query is the generic form of the descriptor (see
// infoyaml.ToValue), so `.kind`, `[.fields[].name]` or
// `.. | objects | select(.kind == "recursive") | .name` work as expected.
// Two functions are added to the jq builtins:
//
//	fingerprint  the hex fingerprint of the descriptor at the input
//	summary      its one-line summary, as printed by String
package infoquery

import (
	"context"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/Peperworx/introspectable/info"
	"github.com/Peperworx/introspectable/infoyaml"
)

var (
	// ErrParse is returned for expressions that fail to parse or compile.
	ErrParse = errors.New("infoquery: invalid expression")
	// ErrEval is returned when evaluation raises an error.
	ErrEval = errors.New("infoquery: evaluation failed")
)

// Query is a compiled expression. It is safe for concurrent use.
type Query struct {
	src  string
	code *gojq.Code
}

// Compile parses and compiles expr.
func Compile(expr string) (*Query, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	code, err := gojq.Compile(q,
		gojq.WithFunction("fingerprint", 0, 0, descriptorFunc(info.Fingerprint)),
		gojq.WithFunction("summary", 0, 0, descriptorFunc(info.Descriptor.String)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &Query{src: expr, code: code}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Query {
	q, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// Run evaluates q against d and collects every emitted value.
func (q *Query) Run(ctx context.Context, d info.Descriptor) ([]any, error) {
	input, err := infoyaml.ToValue(d)
	if err != nil {
		return nil, err
	}
	iter := q.code.RunWithContext(ctx, input)
	var results []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", ErrEval, err)
		}
		results = append(results, v)
	}
	return results, nil
}

// Run compiles expr and evaluates it against d.
func Run(ctx context.Context, d info.Descriptor, expr string) ([]any, error) {
	q, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return q.Run(ctx, d)
}

func descriptorFunc(f func(info.Descriptor) string) func(any, []any) any {
	return func(v any, _ []any) any {
		d, err := infoyaml.FromValue(v)
		if err != nil {
			return err
		}
		return f(d)
	}
}
