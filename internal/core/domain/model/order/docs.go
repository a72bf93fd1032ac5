// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root, its Items and the Status
// state machine.
//
// The package includes:
//   - Order: The aggregate root; a cart while Pending, a kitchen ticket afterwards
//   - Item: One unit of a product in an order, with an optional dietary note
//   - Status: A forward-only state machine over Pending, Placed, Cooking, Done
//
// Key business rules:
//   - Orders start as empty Pending carts
//   - Placement happens exactly once, records who handles the order and stamps the placed date
//   - The kitchen advances status one step at a time: Placed -> Cooking -> Done
//   - Nothing returns to Pending and Done is final
//   - Items may only change while the order is Pending; each change refreshes last modified
//   - The placed date is set if and only if the order is not Pending
package order
