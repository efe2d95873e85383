package calculation

import (
	"reflect"

	"github.com/vishalpa8/wealthwisegrow-sub000/internal/domain"
)

// Engine runs the calculators against a fixed set of rates. An Engine is
// not modified by any calculation and may be shared between goroutines once
// configured.
type Engine struct {
	Rates  domain.Rates
	Logger Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithRates replaces the default statutory rates
func WithRates(r domain.Rates) Option {
	return func(e *Engine) { e.Rates = r }
}

// WithLogger sets the engine logger
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.SetLogger(l) }
}

// NewEngine creates an engine with the default rates and a no-op logger
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		Rates:  domain.DefaultRates(),
		Logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineWithRates creates an engine with configurable rates
func NewEngineWithRates(r domain.Rates) *Engine {
	return NewEngine(WithRates(r))
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// guard runs fn and converts a panic into the zero value of T carrying
// "calculation failed: <name>" in its Error field.
func guard[T any](e *Engine, name string, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Errorf("%s calculation failed: %v", name, r)
			var zero T
			setError(&zero, "calculation failed: "+name)
			result = zero
		}
	}()
	return fn()
}

// setError sets the Error string field of the struct behind ptr, if any
func setError(ptr any, msg string) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("Error")
	if f.IsValid() && f.CanSet() && f.Kind() == reflect.String {
		f.SetString(msg)
	}
}

// errorOf returns the Error string field of a result struct or pointer
func errorOf(result any) string {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName("Error")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}
