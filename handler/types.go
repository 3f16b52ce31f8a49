package handler

// Count marks a parameter as a repeatable counter: each occurrence of the
// flag increments it, no value is accepted.
//
//	//dg:command
//	func BuildRun(verbose handler.Count) error { ... }
type Count int

// Path marks a string parameter as a filesystem path. Generated adapters
// clean the value and reject empty input before it reaches the function.
type Path string

// String returns the path as a plain string.
func (p Path) String() string { return string(p) }
