package batch

import (
	"fmt"
	"strconv"
	"strings"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

const (
	codePrefix = "BATCH-"
	codeWidth  = 4
)

// ErrCodeIsNotConstructed is returned when attempting to use an improperly
// initialized Code. Codes must be created via NewCode or CodeFromString.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"batch code must be created via NewCode or CodeFromString constructors")

// Code is the human-readable identifier of a production batch, e.g. "BATCH-0042".
// Like order codes it is derived from the store's next sequential number and
// relies on the store's uniqueness constraint; on a conflict the creating
// handler retries once with a fresh sequence number.
type Code struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewCode derives a batch code from a sequential number, zero-padded to a
// fixed width. The sequence number must be positive.
func NewCode(seq int64) (Code, error) {
	if seq <= 0 {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("batch code sequence",
			fmt.Errorf("%d is not greater than 0", seq))
	}

	return Code{
		value: fmt.Sprintf("%s%0*d", codePrefix, codeWidth, seq),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// CodeFromString reconstructs a Code from its persisted representation.
func CodeFromString(s string) (Code, error) {
	if !strings.HasPrefix(s, codePrefix) || len(s) <= len(codePrefix) {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("batch code",
			fmt.Errorf("%q does not look like a batch code", s))
	}

	return Code{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Code was properly constructed using a constructor.
func (c Code) Validate() error {
	return c.guard.Validate(ErrCodeIsNotConstructed)
}

// String returns the code value, e.g. "BATCH-0042". Implements fmt.Stringer.
func (c Code) String() string {
	return c.value
}

// Sequence returns the sequential number the code was derived from.
func (c Code) Sequence() int64 {
	seq, _ := strconv.ParseInt(strings.TrimPrefix(c.value, codePrefix), 10, 64)
	return seq
}

// IsEqual compares two codes by value.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}
