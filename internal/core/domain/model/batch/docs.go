// Package batch provides the production batch entity: a named cohort of order
// items released to production together. Batches are created exclusively by
// the batch allocation that runs when an order is confirmed, are referenced by
// items through a weak reference, and are never deleted.
package batch
