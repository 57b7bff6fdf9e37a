package gpp

import "testing"

func TestFibonacciTermsSequence(t *testing.T) {
	f := newFibonacciTerms()
	want := []uint64{1, 2, 3, 5, 8, 13, 21, 34}
	for i, w := range want {
		if got := f.next(); got != w {
			t.Errorf("next() call %d = %d, want %d", i, got, w)
		}
	}
}
