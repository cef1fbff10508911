package loader

// DiffStatsResult is the value carried by a DiffStats load.
type DiffStatsResult struct {
	Added, Removed int
}

// Result is the message shape every loader kind's tea.Cmd produces. T is
// instantiated per kind (e.g. Result[[]forge.PrSummary],
// Result[*forge.PrInfo], Result[DiffStatsResult]), so Update can type-switch
// on the concrete instantiation.
type Result[T any] struct {
	Kind  Kind
	Epoch int
	Value T
	Err   error
}

// Ready reports whether the result completed without error.
func (r Result[T]) Ready() bool { return r.Err == nil }
