package status

import "errors"

var (
	// ErrDuplicateName indicates an Add with a name already present in the pool.
	ErrDuplicateName = errors.New("status: duplicate name")

	// ErrUnknownMember indicates a lookup or removal of a name not in the pool.
	ErrUnknownMember = errors.New("status: unknown member")

	// ErrMixedPriorityMode indicates an Add whose priority presence conflicts
	// with the pool's established tie-break mode.
	ErrMixedPriorityMode = errors.New("status: mixed priority modes")

	// ErrInvalidSeverity indicates a severity value outside the enumeration.
	ErrInvalidSeverity = errors.New("status: invalid severity")
)
