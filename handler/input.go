package handler

// Input is the untyped argument bag passed into a generated adapter.
// It distinguishes "flag present without a value" (Mark) from "flag present
// with a value" (Add); both count as occurrences for counter arguments.
// An Input is built fresh per invocation and is not safe for concurrent
// mutation.
type Input struct {
	values map[string][]string
	seen   map[string]int
}

// NewInput returns an empty argument bag.
func NewInput() *Input {
	return &Input{
		values: make(map[string][]string),
		seen:   make(map[string]int),
	}
}

// Add records one occurrence of the named argument with a value.
func (in *Input) Add(name, value string) {
	in.values[name] = append(in.values[name], value)
	in.seen[name]++
}

// Mark records one occurrence of the named argument without a value
// (a boolean switch or a counter repetition).
func (in *Input) Mark(name string) {
	in.seen[name]++
}

// Present reports whether the argument occurred at all, with or without a value.
func (in *Input) Present(name string) bool {
	return in.seen[name] > 0
}

// Value returns the first value recorded for the argument. The boolean is
// false when the argument is absent or occurred only without a value.
func (in *Input) Value(name string) (string, bool) {
	vals := in.values[name]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Values returns every value recorded for the argument, in occurrence order.
func (in *Input) Values(name string) []string {
	return in.values[name]
}

// Occurrences returns how many times the argument was seen.
func (in *Input) Occurrences(name string) int {
	return in.seen[name]
}
