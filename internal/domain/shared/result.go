package shared

import (
	"fmt"
	"strings"
)

// Outcome is the type-erased view of a Result, used where results of
// different value types need to be inspected together (see Combine).
type Outcome interface {
	IsSuccess() bool
	Errors() []string
}

// Result represents the outcome of a domain operation: either a success
// carrying a value, or a failure carrying an ordered list of
// human-readable error messages. Expected, user-correctable conditions
// (validation failures, business-rule violations, not-found) travel as
// failures; only invariant corruption escalates as a panic.
//
// A success always carries a value; a failure never exposes one. Both
// guarantees are enforced at construction: Success and Failure are the
// only ways to obtain a Result.
type Result[T any] struct {
	value   T
	errors  []string
	success bool
}

// Void is the value type for results that carry no payload, such as
// pure validations.
type Void struct{}

// Success creates a successful result carrying the given value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, success: true}
}

// Failure creates a failed result from one or more error messages.
// Empty messages are dropped; at least one message must remain.
func Failure[T any](errs ...string) Result[T] {
	kept := make([]string, 0, len(errs))
	for _, e := range errs {
		if e != "" {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		kept = []string{"operação falhou"}
	}
	return Result[T]{errors: kept}
}

// FailureFromError creates a failed result from an error value.
func FailureFromError[T any](err error) Result[T] {
	if err == nil {
		return Failure[T]("operação falhou")
	}
	return Failure[T](err.Error())
}

// OK creates a successful value-less result.
func OK() Result[Void] {
	return Success(Void{})
}

// Fail creates a failed value-less result.
func Fail(errs ...string) Result[Void] {
	return Failure[Void](errs...)
}

// IsSuccess returns true if the result is a success.
func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure returns true if the result is a failure.
func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Errors returns the error messages of a failed result, in the order
// they were recorded. The returned slice is a copy; callers cannot
// mutate the result through it. Successful results return nil.
func (r Result[T]) Errors() []string {
	if r.success || len(r.errors) == 0 {
		return nil
	}
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// Error returns the error messages joined with "; ", or "" on success.
func (r Result[T]) Error() string {
	if r.success {
		return ""
	}
	return strings.Join(r.errors, "; ")
}

// Value returns the carried value and true on success. On failure it
// returns the zero value and false; the caller must check the second
// return before using the first. There is deliberately no variant that
// silently substitutes a fallback on failure.
func (r Result[T]) Value() (T, bool) {
	if !r.success {
		var zero T
		return zero, false
	}
	return r.value, true
}

// MustValue returns the carried value, panicking on failure. Reserve
// for call sites where a failure is a programming defect.
func (r Result[T]) MustValue() T {
	if !r.success {
		panic(fmt.Sprintf("MustValue on failed result: %s", r.Error()))
	}
	return r.value
}

// Tap invokes fn with the value if the result is a success and returns
// the result unchanged. Useful for logging or metrics mid-chain.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.success && fn != nil {
		fn(r.value)
	}
	return r
}

// TapFailure invokes fn with the errors if the result is a failure and
// returns the result unchanged.
func (r Result[T]) TapFailure(fn func([]string)) Result[T] {
	if !r.success && fn != nil {
		fn(r.Errors())
	}
	return r
}

// Map applies fn to the value of a successful result. A failure is
// propagated with its error list untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.success {
		return Result[U]{errors: r.errors}
	}
	return Success(fn(r.value))
}

// Bind chains a dependent operation that may itself fail. A failure is
// propagated with its error list untouched.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.success {
		return Result[U]{errors: r.errors}
	}
	return fn(r.value)
}

// Match performs exhaustive case analysis on a result, applying exactly
// one of the two functions.
func Match[T, U any](r Result[T], onSuccess func(T) U, onFailure func([]string) U) U {
	if r.success {
		return onSuccess(r.value)
	}
	return onFailure(r.Errors())
}

// Combine inspects several independent results. If all succeeded it
// returns a success; otherwise it returns a failure whose error list is
// the concatenation, in input order, of every failing result's errors.
// Callers performing several independent checks therefore report all
// violations in one outcome instead of just the first.
func Combine(results ...Outcome) Result[Void] {
	var errs []string
	for _, r := range results {
		if r == nil || r.IsSuccess() {
			continue
		}
		errs = append(errs, r.Errors()...)
	}
	if len(errs) > 0 {
		return Failure[Void](errs...)
	}
	return OK()
}
