package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrInvalidArgumentValue
	ErrCommandNotFound
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Command not found
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid argument value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:              1,
	ErrInvalidFlag:          2,
	ErrMissingArgument:      2,
	ErrInvalidArgumentValue: 2,
	ErrCommandNotFound:      1,
}

// kindNames are the stable identifiers used when an error is serialized
// into an output envelope.
var kindNames = map[ErrorKind]string{
	ErrUnknown:              "unknown",
	ErrInvalidFlag:          "invalid_flag",
	ErrMissingArgument:      "missing_argument",
	ErrInvalidArgumentValue: "invalid_argument_value",
	ErrCommandNotFound:      "command_not_found",
}

// Error represents a user-facing usage error with semantic type information.
// Routing and adapter failures are always values of this type, never panics.
type Error struct {
	Kind    ErrorKind
	Message string

	// Argument is set for argument-level errors (missing/invalid value).
	Argument string

	// Category and Action are set for ErrCommandNotFound.
	Category string
	Action   string

	// Suggestions holds valid nearby names for ErrCommandNotFound.
	Suggestions []string

	ExitCode int // explicit override; computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// KindName returns the stable serialized identifier for the error kind.
func (e *Error) KindName() string {
	if name, ok := kindNames[e.Kind]; ok {
		return name
	}
	return kindNames[ErrUnknown]
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
