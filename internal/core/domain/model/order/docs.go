// Package order provides domain entities and business logic for customer
// orders. It implements the Order aggregate root with lifecycle management and
// inventory-aware status transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, the line item, and the lifecycle
//   - Status: the lifecycle state machine with sale classification
//   - HistoryEntry: one element of the append-only status history
//   - InventoryEffect: the one-time stock/sold delta a transition requires
//
// Key business rules:
//   - Orders start in Processing with one mirroring history entry
//   - The order number is minted once at creation and never recomputed
//   - Every successful transition appends exactly one history entry
//   - Inventory reconciliation is triggered by the transition edge, not the
//     destination status alone: re-entering an already-applied classification
//     (Shipped -> Delivered) never applies the stock delta twice
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
