package gpp

// fibonacciTerms lazily yields the Fibonacci sequence used by the
// Zeckendorf integer encoding: F(1)=1, F(2)=2, F(3)=3, F(4)=5, ... (i.e.
// the usual Fibonacci sequence starting 1,2 rather than 1,1). Terms are
// uint64 and are not bounds-checked here: values past F(92) wrap around.
// readFibonacciInteger guards its own accumulator against overflow.
type fibonacciTerms struct {
	a, b uint64
}

func newFibonacciTerms() *fibonacciTerms {
	return &fibonacciTerms{a: 1, b: 2}
}

func (f *fibonacciTerms) next() uint64 {
	v := f.a
	f.a, f.b = f.b, f.a+f.b
	return v
}
