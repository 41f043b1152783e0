package integrity

import (
	"fmt"
)

// ReconcileCart recomputes a cart's derived fields from its live items and
// writes them back. Recompute-from-scratch rather than incremental delta:
// any transient drift is corrected by the next mutation.
func ReconcileCart(r *Repos, cartID uint) error {
	cart, err := r.Carts.FindByID(cartID)
	if err != nil {
		return fmt.Errorf("reconcile cart: %w", err)
	}

	items, err := r.CartItems.FindByCartID(cartID)
	if err != nil {
		return fmt.Errorf("reconcile cart: %w", err)
	}

	count := 0
	total := 0.0
	for _, item := range items {
		count += item.Quantity
		total += item.TotalPrice
	}

	cart.ItemsCount = count
	cart.TotalPrice = total
	if err := r.Carts.Update(cart); err != nil {
		return fmt.Errorf("reconcile cart: %w", err)
	}
	return nil
}

// ReconcileOrder recomputes an order's derived fields from its live items
// and writes them back.
func ReconcileOrder(r *Repos, orderID uint) error {
	order, err := r.Orders.FindByID(orderID)
	if err != nil {
		return fmt.Errorf("reconcile order: %w", err)
	}

	items, err := r.OrderItems.FindByOrderID(orderID)
	if err != nil {
		return fmt.Errorf("reconcile order: %w", err)
	}

	count := 0
	total := 0.0
	for _, item := range items {
		count += item.Quantity
		total += item.TotalPrice
	}

	order.ItemsCount = count
	order.TotalPrice = total
	if err := r.Orders.Update(order); err != nil {
		return fmt.Errorf("reconcile order: %w", err)
	}
	return nil
}
