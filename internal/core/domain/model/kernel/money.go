package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney, ParseMoney, or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, ParseMoney, or ZeroMoney constructors")

// Money is an immutable value object representing a non-negative amount of
// currency as an integer count of minor units (cents). All arithmetic is
// integer arithmetic; conversion to and from major-unit decimal strings
// happens only at the presentation boundary via ParseMoney and String.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.ParseMoney("15.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price.Amount()) // Output: 1500
//	fmt.Println(price)          // Output: 15.00
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount of minor units.
// The amount must not be negative.
//
// Parameters:
//   - minorUnits: The amount in minor currency units (e.g., cents)
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d is negative", minorUnits))
	}

	return Money{
		amount: minorUnits,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney creates a valid Money value of zero minor units.
// Useful as a starting point for summation and as a default for optional fees.
func ZeroMoney() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// ParseMoney converts a major-unit decimal string into Money.
// Accepted forms are "12", "12.3", and "12.34"; an empty string parses as zero.
// At most two fraction digits are allowed and negative amounts are rejected.
// This is the only place where the decimal representation enters the domain.
//
// Example:
//
//	fee, err := kernel.ParseMoney("5.00")
//	// fee.Amount() == 500
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroMoney(), nil
	}

	if strings.HasPrefix(s, "-") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%q is negative", s))
	}

	whole, fraction, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}

	var minor int64
	if fraction != "" {
		if len(fraction) > 2 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
				fmt.Errorf("%q has more than two fraction digits", s))
		}
		// "5" means 50 cents, "05" means 5 cents.
		for len(fraction) < 2 {
			fraction += "0"
		}
		minor, err = strconv.ParseInt(fraction, 10, 64)
		if err != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
		}
	}

	return NewMoney(major*100 + minor)
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two money values.
// Both values must be properly constructed for the operation to succeed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// MultiplyBy returns the money value multiplied by a non-negative integer factor.
// Used to compute line totals from a unit price and a quantity.
func (m Money) MultiplyBy(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}

	return NewMoney(m.amount * int64(factor))
}

// IsEqual compares two money values for equality by amount.
// Both values must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// String returns the major-unit decimal representation, e.g. "12.34".
// This method implements the fmt.Stringer interface and is intended for
// display and export at the presentation boundary only.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
