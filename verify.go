package functional

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Form identifies how the minimum operation was instantiated.
type Form string

const (
	// Fixed is Minimum[T] with the operand type named explicitly.
	Fixed Form = "fixed"

	// Deduced is Min with the operand type inferred at the call site.
	Deduced Form = "deduced"

	// Common is MinCommon, with the result converted to a common type.
	Common Form = "common"
)

// Property identifies the assertion that an outcome failed.
type Property string

const (
	// Expected asserts that op(lhs, rhs) equals the expected minimum.
	Expected Property = "expected"

	// Commutative asserts that op(lhs, rhs) equals op(rhs, lhs).
	Commutative Property = "commutative"

	// Agreement asserts that every execution context computed the same value.
	Agreement Property = "agreement"

	// Execution asserts that the operation could be run at all.
	Execution Property = "execution"
)

// Context is an execution context in which cases are evaluated.
type Context struct {
	name     string
	executor *Executor
}

// HostContext evaluates operations directly on the calling goroutine.
func HostContext() Context {
	return Context{name: "host"}
}

// OffloadContext evaluates operations on the executor's worker goroutine.
func OffloadContext(executor *Executor) Context {
	return Context{name: "offload", executor: executor}
}

func (c Context) String() string {
	return c.name
}

func evaluate[T any](ctx Context, fn func() T) (T, error) {
	if ctx.executor == nil {
		return call(fn)
	}
	result := Offload(ctx.executor, fn).Await()
	return result.Success(), result.Error()
}

// Outcome is the value computed for one case in one form.
type Outcome struct {
	Case    string
	Form    Form
	Forward any
	Reverse any
}

// Report holds every outcome computed in a context, in case order.
type Report struct {
	Context  string
	Outcomes []Outcome
}

// AssertionError describes a single failed assertion.
type AssertionError struct {
	Case     string
	Form     Form
	Context  string
	Property Property
	Got      any
	Want     any
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: %s form in %s context: %s: got %v, want %v",
		e.Case, e.Form, e.Context, e.Property, e.Got, e.Want)
}

// VerificationError aggregates every failure of a verification run.
type VerificationError struct {
	Failures []error
}

func (e *VerificationError) Error() string {
	messages := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		messages = append(messages, failure.Error())
	}
	return fmt.Sprintf("%d assertion(s) failed: %s", len(e.Failures), strings.Join(messages, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *VerificationError) Unwrap() []error {
	return e.Failures
}

// Case is a pair of operands with the minimum they are expected to produce.
type Case interface {
	// Name identifies the case in reports and errors.
	Name() string

	verify(ctx Context) ([]Outcome, []error)
}

type form[T constraints.Ordered] struct {
	kind Form
	op   func(lhs, rhs T) T
}

type typedCase[T constraints.Ordered] struct {
	name     string
	lhs      T
	rhs      T
	expected T
	forms    []form[T]
}

// NewCase creates a case evaluated in the fixed and deduced forms.
func NewCase[T constraints.Ordered](name string, lhs, rhs, expected T) Case {
	return &typedCase[T]{
		name:     name,
		lhs:      lhs,
		rhs:      rhs,
		expected: expected,
		forms:    orderedForms[T](),
	}
}

// NewNumericCase creates a case evaluated in the fixed, deduced, and common forms.
func NewNumericCase[T Real](name string, lhs, rhs, expected T) Case {
	forms := append(orderedForms[T](), form[T]{
		kind: Common,
		op: func(lhs, rhs T) T {
			return MinCommon[T](lhs, rhs)
		},
	})
	return &typedCase[T]{
		name:     name,
		lhs:      lhs,
		rhs:      rhs,
		expected: expected,
		forms:    forms,
	}
}

func orderedForms[T constraints.Ordered]() []form[T] {
	return []form[T]{
		{kind: Fixed, op: Minimum[T]{}.Apply},
		{kind: Deduced, op: func(lhs, rhs T) T { return Min(lhs, rhs) }},
	}
}

func (c *typedCase[T]) Name() string {
	return c.name
}

func (c *typedCase[T]) verify(ctx Context) ([]Outcome, []error) {
	var outcomes []Outcome
	var failures []error

	for _, f := range c.forms {
		op := f.op
		forward, err := evaluate(ctx, func() T { return op(c.lhs, c.rhs) })
		if err == nil {
			var reverse T
			reverse, err = evaluate(ctx, func() T { return op(c.rhs, c.lhs) })
			if err == nil {
				outcomes = append(outcomes, Outcome{Case: c.name, Form: f.kind, Forward: forward, Reverse: reverse})
				if forward != c.expected {
					failures = append(failures, c.failure(ctx, f.kind, Expected, forward, c.expected))
				}
				if forward != reverse {
					failures = append(failures, c.failure(ctx, f.kind, Commutative, reverse, forward))
				}
				continue
			}
		}
		failures = append(failures, errors.Wrapf(
			c.failure(ctx, f.kind, Execution, err.Error(), nil),
			"failed to evaluate %s", c.name,
		))
	}

	return outcomes, failures
}

func (c *typedCase[T]) failure(ctx Context, kind Form, property Property, got, want any) *AssertionError {
	return newAssertionError(c.name, ctx, kind, property, got, want)
}

func newAssertionError(name string, ctx Context, kind Form, property Property, got, want any) *AssertionError {
	return &AssertionError{
		Case:     name,
		Form:     kind,
		Context:  ctx.String(),
		Property: property,
		Got:      got,
		Want:     want,
	}
}

type mixedCase[C, L, R Real] struct {
	name     string
	lhs      L
	rhs      R
	expected C
}

// NewMixedCase creates a case over operands of two numeric types, evaluated
// in the common form with C as the common type.
func NewMixedCase[C, L, R Real](name string, lhs L, rhs R, expected C) Case {
	return &mixedCase[C, L, R]{name: name, lhs: lhs, rhs: rhs, expected: expected}
}

func (c *mixedCase[C, L, R]) Name() string {
	return c.name
}

func (c *mixedCase[C, L, R]) verify(ctx Context) ([]Outcome, []error) {
	forward, err := evaluate(ctx, func() C { return MinCommon[C](c.lhs, c.rhs) })
	if err == nil {
		var reverse C
		reverse, err = evaluate(ctx, func() C { return MinCommon[C](c.rhs, c.lhs) })
		if err == nil {
			var failures []error
			if forward != c.expected {
				failures = append(failures, newAssertionError(c.name, ctx, Common, Expected, forward, c.expected))
			}
			if forward != reverse {
				failures = append(failures, newAssertionError(c.name, ctx, Common, Commutative, reverse, forward))
			}
			return []Outcome{{Case: c.name, Form: Common, Forward: forward, Reverse: reverse}}, failures
		}
	}
	return nil, []error{errors.Wrapf(
		newAssertionError(c.name, ctx, Common, Execution, err.Error(), nil),
		"failed to evaluate %s", c.name,
	)}
}

// Cases returns the built-in scenarios: integer and character minimums in
// every form, followed by operands of mixed numeric types.
func Cases() []Case {
	return []Case{
		NewNumericCase[int]("int(0, 1)", 0, 1, 0),
		NewNumericCase[int]("int(1, 0)", 1, 0, 0),
		NewNumericCase[int]("int(0, 0)", 0, 0, 0),
		NewNumericCase[int]("int(-1, 1)", -1, 1, -1),
		NewNumericCase[rune]("char('a', 'b')", 'a', 'b', 'a'),
		NewMixedCase[int64]("mixed(int32(-1), uint8(1))", int32(-1), uint8(1), -1),
		NewMixedCase[int64]("mixed(uint64(max), int64(0))", uint64(math.MaxUint64), int64(0), 0),
		NewMixedCase[float64]("mixed(float32(0.5), int16(1))", float32(0.5), int16(1), 0.5),
		NewMixedCase[rune]("mixed(byte('a'), rune('b'))", byte('a'), rune('b'), 'a'),
	}
}

// Verify evaluates every case in every form it supports within ctx. It
// returns a *VerificationError if any assertion failed.
func Verify(ctx Context, cases []Case) (*Report, error) {
	report := &Report{Context: ctx.String()}
	var failures []error

	for _, c := range cases {
		outcomes, caseFailures := c.verify(ctx)
		report.Outcomes = append(report.Outcomes, outcomes...)
		failures = append(failures, caseFailures...)
	}

	if len(failures) > 0 {
		return report, &VerificationError{Failures: failures}
	}
	return report, nil
}

// VerifyAll verifies the cases in the host context and in the offload
// context backed by executor, then checks that both contexts computed
// identical values. The executor must be running.
func VerifyAll(executor *Executor, cases []Case) error {
	host, hostErr := Verify(HostContext(), cases)
	offload, offloadErr := Verify(OffloadContext(executor), cases)

	var failures []error
	for _, err := range []error{hostErr, offloadErr} {
		var verificationErr *VerificationError
		if errors.As(err, &verificationErr) {
			failures = append(failures, verificationErr.Failures...)
		}
	}
	failures = append(failures, compareReports(host, offload)...)

	if len(failures) > 0 {
		return &VerificationError{Failures: failures}
	}
	return nil
}

func compareReports(host, offload *Report) []error {
	index := make(map[string]Outcome, len(offload.Outcomes))
	for _, outcome := range offload.Outcomes {
		index[outcome.Case+"/"+string(outcome.Form)] = outcome
	}

	var failures []error
	for _, want := range host.Outcomes {
		got, ok := index[want.Case+"/"+string(want.Form)]
		if !ok {
			// Already reported as an execution failure.
			continue
		}
		if got.Forward != want.Forward || got.Reverse != want.Reverse {
			failures = append(failures, &AssertionError{
				Case:     want.Case,
				Form:     want.Form,
				Context:  offload.Context,
				Property: Agreement,
				Got:      got.Forward,
				Want:     want.Forward,
			})
		}
	}
	return failures
}
