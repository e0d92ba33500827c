package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// ItemStatus represents the production state of a single order item.
//
// Unlike the order Status, item statuses carry no transition table: production
// may set any of the three values directly, and validity is membership in the
// set rather than sequencing. Every item-status write triggers the order's
// completion roll-up.
type ItemStatus int

const (
	// ItemStatusUnknown represents an invalid or undefined item status.
	ItemStatusUnknown ItemStatus = iota

	// ToProduce is the initial production status of every item.
	// Batch allocation also resets assigned items to this status.
	ToProduce

	// InProgress indicates the item is currently being produced.
	InProgress

	// Finished indicates production of the item is complete.
	// Once every item of an order is Finished, the order rolls up to Done.
	Finished
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusUnknown: "Unknown",
		ToProduce:         "ToProduce",
		InProgress:        "InProgress",
		Finished:          "Finished",
	}
}

func getValidItemStatusStrings() map[ItemStatus]string {
	//nolint:exhaustive // ItemStatusUnknown is intentionally excluded as it's invalid
	return map[ItemStatus]string{
		ToProduce:  "ToProduce",
		InProgress: "InProgress",
		Finished:   "Finished",
	}
}

// ItemStatusFromString parses an item status name as produced by String.
// Used at the boundary to normalize production status requests.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, name := range getValidItemStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("item status",
		fmt.Errorf("%q is not a valid item status", s))
}

// Validate checks if the ItemStatus value is a member of the valid set.
func (s ItemStatus) Validate() error {
	if _, ok := getValidItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item status",
			fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

// String returns the human-readable name of the item status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
