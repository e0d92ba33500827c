// Package order provides domain entities and business logic for custom-print
// order management. It implements the Order aggregate root with lifecycle
// management, item ownership, and derived financial totals.
//
// The package includes:
//   - Order: The aggregate root managing order identity, items, and lifecycle
//   - Item: A product line exclusively owned by its order
//   - Status: A state machine enforcing the order lifecycle transitions
//   - ItemStatus: The per-item production state (set-membership, no sequencing)
//   - Code: The generated human-readable order code value object
//   - Customer: Customer contact details value object
//
// Key business rules:
//   - The expected cash-on-delivery amount always equals the sum of item line
//     totals plus the delivery fee, reconciled synchronously on every mutation
//   - Items are editable only while the order is New or PendingConfirmation
//   - Order statuses follow the single-next-state transition table; Archived
//     is reachable from any state and reversible back to New
//   - Once every item is Finished, the completion roll-up forces the order to
//     Done (archived orders excepted)
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
