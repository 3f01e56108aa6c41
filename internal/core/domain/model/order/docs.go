// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order references a customer, a store, and a single menu item. It is
// created in Placed status and only ever changes through ChangeStatus, which
// enforces the forward path Placed -> Confirmed -> Preparing -> OnTheWay ->
// Delivered and permits cancellation exclusively from Placed. Orders are
// never deleted; Canceled is a terminal status value.
package order
