// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the print-shop system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BatchAllocator: A domain service grouping unbatched order items into a
//     new production batch when an order is confirmed
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
