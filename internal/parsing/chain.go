package parsing

// strategy is one link of a fallback chain. It reports whether it produced a result.
type strategy[In, Out any] func(In) (Out, bool)

// firstSuccess runs the chain in order and returns the first produced result.
func firstSuccess[In, Out any](chain []strategy[In, Out], in In) (Out, bool) {
	for _, s := range chain {
		if out, ok := s(in); ok {
			return out, true
		}
	}
	var zero Out
	return zero, false
}
