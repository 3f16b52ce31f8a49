package handler

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/declgen-tools/cli/usage"
)

// Output is the serializable envelope returned from an adapter: a tagged
// success carrying the wrapped function's payload, or a typed error.
type Output struct {
	Status string       `json:"status" yaml:"status"`
	Result any          `json:"result,omitempty" yaml:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`

	// err preserves the original error untouched for callers that
	// propagate rather than render.
	err error
}

// ErrorDetail is the serialized form of a failure. Kind uses the stable
// identifiers from the usage package; domain errors surface as "domain".
type ErrorDetail struct {
	Kind     string `json:"kind" yaml:"kind"`
	Argument string `json:"argument,omitempty" yaml:"argument,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

// Ok wraps a successful result.
func Ok(result any) Output {
	return Output{Status: "ok", Result: result}
}

// Fail wraps an error. Usage errors keep their kind and argument name;
// any other error is surfaced unchanged as a domain failure.
func Fail(err error) Output {
	detail := &ErrorDetail{Kind: "domain", Message: err.Error()}
	if ue, ok := err.(*usage.Error); ok {
		detail.Kind = ue.KindName()
		detail.Argument = ue.Argument
	}
	return Output{Status: "error", Error: detail, err: err}
}

// IsError reports whether the envelope carries a failure.
func (o Output) IsError() bool {
	return o.Error != nil
}

// Err returns the original error, or nil for a success envelope.
func (o Output) Err() error {
	if o.Error == nil {
		return nil
	}
	if o.err != nil {
		return o.err
	}
	return fmt.Errorf("%s", o.Error.Message)
}

// JSON renders the envelope as indented JSON.
func (o Output) JSON() (string, error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return string(b), nil
}

// YAML renders the envelope as YAML.
func (o Output) YAML() (string, error) {
	b, err := yaml.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return string(b), nil
}
