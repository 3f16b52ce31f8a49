// Package handler defines the untyped boundary between parsed command-line
// input and generated command adapters: the Input bag a tokenizer fills, the
// tagged Output envelope an adapter returns, and the named parameter types
// (Count, Path) the inference engine gives special treatment.
package handler
