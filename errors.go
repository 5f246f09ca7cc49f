package docargs

import "errors"

// Sentinel errors surfaced at registration time. Errors raised by
// cobra/pflag at actual command-line parse time propagate unchanged.
var (
	// ErrMissingDoc indicates a subcommand handler registered without a
	// doc comment.
	ErrMissingDoc = errors.New("missing doc comment")
	// ErrNilHandler indicates a subcommand registered without a handler.
	ErrNilHandler = errors.New("nil handler")
	// ErrInvalidKind indicates an unrecognized automatic-registration
	// kind.
	ErrInvalidKind = errors.New("invalid argument kind")
	// ErrInvalidArgument indicates an argument definition that cannot be
	// registered.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidDefault indicates a default value whose runtime type does
	// not match the argument's resolved type.
	ErrInvalidDefault = errors.New("invalid default value")
)
