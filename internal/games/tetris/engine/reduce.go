package engine

// Reduce applies one action to s. Ticks whose elapsed counter is not a
// multiple of the current speed are dropped, which throttles gravity
// without a variable-rate timer.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Tick:
		if a.Elapsed%Speed(s.Level) != 0 {
			return s
		}
		return a.Apply(s)
	case GenerateBlock:
		return a.Apply(s)
	case Move:
		return a.Apply(s)
	case Rotate:
		return a.Apply(s)
	case Drop:
		return a.Apply(s)
	case Restart:
		return a.Apply(s)
	default:
		return s
	}
}

// Fold reduces actions over s in order.
func Fold(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
