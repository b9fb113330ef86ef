package domain

// Continuation decides, once per tick, whether a watch session keeps running.
type Continuation interface {
	Continue() bool
}

// Continuous never stops the session on its own.
type Continuous struct{}

// Continue always reports true.
func (Continuous) Continue() bool {
	return true
}

// Predicate adapts a caller-supplied function to Continuation.
type Predicate func() bool

// Continue calls the predicate. A nil predicate behaves like Continuous.
func (p Predicate) Continue() bool {
	if p == nil {
		return true
	}
	return p()
}
