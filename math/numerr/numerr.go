/*package numerr contains the error type returned by the mat and interpolate
packages.

Every failure is a *Error carrying a Kind. Kinds fall into two disjoint
groups: validation kinds, which describe a problem with the shape or
ordering of caller data and are detected before any arithmetic, and
computational kinds, which are detected mid-algorithm when a value that
must be non-zero turns out to be zero. Retrying a call that failed with
either group cannot succeed without changing the input.
*/
package numerr

import (
	"errors"
	"fmt"
)

// Kind identifies which precondition or computation failed.
type Kind int

const (
	// Unknown is the Kind of a nil error or an error not produced by this
	// package.
	Unknown Kind = iota

	// Validation kinds.
	BelowMinimumSize
	RelativeSizeMismatch
	DuplicateNode
	UnorderedNode
	BoundaryConditionCount
	OutOfDomain

	// Computational kinds.
	SingularPivot
	ZeroDiagonal
)

var kindNames = map[Kind]string{
	Unknown:                "unknown error",
	BelowMinimumSize:       "below minimum size",
	RelativeSizeMismatch:   "relative size mismatch",
	DuplicateNode:          "duplicate node",
	UnorderedNode:          "unordered node",
	BoundaryConditionCount: "wrong boundary condition count",
	OutOfDomain:            "out of domain",
	SingularPivot:          "singular pivot",
	ZeroDiagonal:           "zero diagonal",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return name
}

// Validation returns true if k describes bad caller data.
func (k Kind) Validation() bool {
	return k >= BelowMinimumSize && k <= OutOfDomain
}

// Computational returns true if k describes a numerically singular problem.
func (k Kind) Computational() bool {
	return k == SingularPivot || k == ZeroDiagonal
}

// Error is the tagged error type shared by the numeric packages. Op names
// the failing operation (e.g. "mat.Factorize") and Detail says which
// precondition failed and on what values.
type Error struct {
	Kind   Kind
	Op     string
	Detail string
}

// New creates an Error with a formatted detail string.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	return msg
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrSingularPivot) works regardless of Op and Detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrBelowMinimumSize       = &Error{Kind: BelowMinimumSize}
	ErrRelativeSizeMismatch   = &Error{Kind: RelativeSizeMismatch}
	ErrDuplicateNode          = &Error{Kind: DuplicateNode}
	ErrUnorderedNode          = &Error{Kind: UnorderedNode}
	ErrBoundaryConditionCount = &Error{Kind: BoundaryConditionCount}
	ErrOutOfDomain            = &Error{Kind: OutOfDomain}
	ErrSingularPivot          = &Error{Kind: SingularPivot}
	ErrZeroDiagonal           = &Error{Kind: ZeroDiagonal}
)

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsValidation returns true if err was caused by bad caller data.
func IsValidation(err error) bool { return KindOf(err).Validation() }

// IsComputational returns true if err was caused by a zero pivot or a zero
// diagonal entry.
func IsComputational(err error) bool { return KindOf(err).Computational() }
