package calculator

import (
	"math"
	"sort"
	"strconv"
)

// Function is a named function of a fixed number of arguments. Functions are
// only obtained from the package's fixed table and are never modified.
type Function struct {
	name  string
	arity int
	call  func(args []float64) float64
}

// Name returns the lowercase name of the function.
func (f *Function) Name() string {
	return f.name
}

// Arity returns the number of arguments the function takes.
func (f *Function) Arity() int {
	return f.arity
}

// Call evaluates the function. args are in source order. Panics if len(args)
// differs from the function's arity; the evaluator checks this before calling.
// Arguments outside the function's domain produce NaN rather than an error.
func (f *Function) Call(args []float64) float64 {
	if len(args) != f.arity {
		panic("calculator: " + f.name + " called with " + strconv.Itoa(len(args)) + " arguments")
	}
	return f.call(args)
}

// monadic wraps a function of one variable.
func monadic(name string, f func(float64) float64) Function {
	return Function{
		name:  name,
		arity: 1,
		call:  func(args []float64) float64 { return f(args[0]) },
	}
}

var functions = [...]Function{
	monadic("sqrt", math.Sqrt),
}

var globalfuncs = func() map[string]*Function {
	m := make(map[string]*Function, len(functions))
	for i := range functions {
		m[functions[i].name] = &functions[i]
	}
	return m
}()

// LookupFunction returns the function with the given lowercase name.
func LookupFunction(name string) (*Function, bool) {
	f, ok := globalfuncs[name]
	return f, ok
}

// Functions returns every function sorted by name.
func Functions() []*Function {
	r := make([]*Function, 0, len(globalfuncs))
	for _, f := range globalfuncs {
		r = append(r, f)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].name < r[j].name })
	return r
}
