package command

import (
	"context"

	apperr "github.com/nvasilev/storefront/internal/domain"
	"github.com/nvasilev/storefront/internal/integrity"
	"github.com/nvasilev/storefront/internal/order/domain"
	"github.com/nvasilev/storefront/pkg/logger"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. Publishing happens after commit; a broker failure never rolls
// the order back.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	PublishOrderStatusChanged(ctx context.Context, order *domain.Order, previous string) error
}

// OrderLine is one requested product line in a create order command.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand represents the command to place an order.
type CreateOrderCommand struct {
	UserID uint
	Lines  []OrderLine
}

func (cmd CreateOrderCommand) validate() error {
	if cmd.UserID == 0 {
		return apperr.Invalid("user_id", "is required")
	}
	if len(cmd.Lines) == 0 {
		return apperr.Invalid("lines", "must not be empty")
	}
	for _, line := range cmd.Lines {
		if line.ProductID == 0 {
			return apperr.Invalid("product_id", "is required")
		}
		if line.Quantity <= 0 {
			return apperr.Invalid("quantity", "must be positive")
		}
	}
	return nil
}

// CreateOrderHandler places an order. Each line captures the product's
// unit price, debits stock by its quantity, and the order aggregates are
// recomputed before the transaction commits.
type CreateOrderHandler struct {
	runner    integrity.Runner
	publisher OrderEventPublisher
}

// NewCreateOrderHandler creates a new create order handler.
func NewCreateOrderHandler(runner integrity.Runner, publisher OrderEventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{runner: runner, publisher: publisher}
}

// Handle executes the create order command.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	var (
		result *domain.Order
		items  []domain.OrderItem
	)
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		if _, err := r.Users.FindByID(cmd.UserID); err != nil {
			return err
		}

		order := &domain.Order{UserID: cmd.UserID, Status: domain.StatusPending}
		if err := r.Orders.Create(order); err != nil {
			return err
		}

		for _, line := range cmd.Lines {
			product, err := r.Products.FindByID(line.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return apperr.Invalid("quantity", "exceeds available stock")
			}
			item := &domain.OrderItem{
				OrderID:    order.ID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				TotalPrice: float64(line.Quantity) * product.Price,
			}
			if err := r.OrderItems.Create(item); err != nil {
				return err
			}
			if err := r.Products.AdjustStock(line.ProductID, -line.Quantity); err != nil {
				return err
			}
		}

		if err := integrity.ReconcileOrder(r, order.ID); err != nil {
			return err
		}

		var err error
		result, err = r.Orders.FindByID(order.ID)
		if err != nil {
			return err
		}
		items, err = r.OrderItems.FindByOrderID(order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, result, items); err != nil {
			logger.Error(ctx).Err(err).Uint("order_id", result.ID).Msg("failed to publish order placed event")
		}
	}
	return result, nil
}

// AddOrderItemCommand represents the command to add a line to an existing
// order.
type AddOrderItemCommand struct {
	OrderID   uint
	ProductID uint
	Quantity  int
}

// AddOrderItemHandler adds a line to an order, debiting stock by the line
// quantity and recomputing the order aggregates in the same transaction.
type AddOrderItemHandler struct {
	runner integrity.Runner
}

// NewAddOrderItemHandler creates a new add order item handler.
func NewAddOrderItemHandler(runner integrity.Runner) *AddOrderItemHandler {
	return &AddOrderItemHandler{runner: runner}
}

// Handle executes the add order item command.
func (h *AddOrderItemHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, apperr.Invalid("order_id", "is required")
	}
	if cmd.ProductID == 0 {
		return nil, apperr.Invalid("product_id", "is required")
	}
	if cmd.Quantity <= 0 {
		return nil, apperr.Invalid("quantity", "must be positive")
	}

	var result *domain.Order
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		order, err := r.Orders.FindByID(cmd.OrderID)
		if err != nil {
			return err
		}
		product, err := r.Products.FindByID(cmd.ProductID)
		if err != nil {
			return err
		}
		if product.Stock < cmd.Quantity {
			return apperr.Invalid("quantity", "exceeds available stock")
		}

		item := &domain.OrderItem{
			OrderID:    order.ID,
			ProductID:  cmd.ProductID,
			Quantity:   cmd.Quantity,
			TotalPrice: float64(cmd.Quantity) * product.Price,
		}
		if err := r.OrderItems.Create(item); err != nil {
			return err
		}
		if err := r.Products.AdjustStock(cmd.ProductID, -cmd.Quantity); err != nil {
			return err
		}
		if err := integrity.ReconcileOrder(r, order.ID); err != nil {
			return err
		}
		result, err = r.Orders.FindByID(order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateOrderItemCommand represents the command to change an order line's
// quantity.
type UpdateOrderItemCommand struct {
	ItemID   uint
	Quantity int
}

// UpdateOrderItemHandler rewrites an order line. Growing a line debits
// stock by the difference; shrinking one does not restock.
type UpdateOrderItemHandler struct {
	runner integrity.Runner
}

// NewUpdateOrderItemHandler creates a new update order item handler.
func NewUpdateOrderItemHandler(runner integrity.Runner) *UpdateOrderItemHandler {
	return &UpdateOrderItemHandler{runner: runner}
}

// Handle executes the update order item command.
func (h *UpdateOrderItemHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) (*domain.Order, error) {
	if cmd.ItemID == 0 {
		return nil, apperr.Invalid("item_id", "is required")
	}
	if cmd.Quantity <= 0 {
		return nil, apperr.Invalid("quantity", "must be positive")
	}

	var result *domain.Order
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		line, err := r.OrderItems.FindByID(cmd.ItemID)
		if err != nil {
			return err
		}
		product, err := r.Products.FindByID(line.ProductID)
		if err != nil {
			return err
		}

		delta := cmd.Quantity - line.Quantity
		if delta > 0 {
			if product.Stock < delta {
				return apperr.Invalid("quantity", "exceeds available stock")
			}
			if err := r.Products.AdjustStock(line.ProductID, -delta); err != nil {
				return err
			}
		}

		line.Quantity = cmd.Quantity
		line.TotalPrice = float64(cmd.Quantity) * product.Price
		if err := r.OrderItems.Update(line); err != nil {
			return err
		}
		if err := integrity.ReconcileOrder(r, line.OrderID); err != nil {
			return err
		}
		result, err = r.Orders.FindByID(line.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveOrderItemCommand represents the command to drop one order line.
type RemoveOrderItemCommand struct {
	ItemID uint
}

// RemoveOrderItemHandler removes a line and recomputes the order
// aggregates. Stock already debited for the line is not returned.
type RemoveOrderItemHandler struct {
	runner integrity.Runner
}

// NewRemoveOrderItemHandler creates a new remove order item handler.
func NewRemoveOrderItemHandler(runner integrity.Runner) *RemoveOrderItemHandler {
	return &RemoveOrderItemHandler{runner: runner}
}

// Handle executes the remove order item command.
func (h *RemoveOrderItemHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (*domain.Order, error) {
	if cmd.ItemID == 0 {
		return nil, apperr.Invalid("item_id", "is required")
	}

	var result *domain.Order
	err := h.runner.RunInTransaction(ctx, func(r *integrity.Repos) error {
		line, err := r.OrderItems.FindByID(cmd.ItemID)
		if err != nil {
			return err
		}
		if err := r.OrderItems.Delete(line.ID); err != nil {
			return err
		}
		if err := integrity.ReconcileOrder(r, line.OrderID); err != nil {
			return err
		}
		result, err = r.Orders.FindByID(line.OrderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateOrderStatusCommand represents the command to move an order to a
// new status.
type UpdateOrderStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateOrderStatusHandler updates the order status and publishes the
// transition.
type UpdateOrderStatusHandler struct {
	repo      domain.OrderRepository
	publisher OrderEventPublisher
}

// NewUpdateOrderStatusHandler creates a new update order status handler.
func NewUpdateOrderStatusHandler(repo domain.OrderRepository, publisher OrderEventPublisher) *UpdateOrderStatusHandler {
	return &UpdateOrderStatusHandler{repo: repo, publisher: publisher}
}

// Handle executes the update order status command.
func (h *UpdateOrderStatusHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*domain.Order, error) {
	if cmd.OrderID == 0 {
		return nil, apperr.Invalid("order_id", "is required")
	}
	if !domain.ValidStatus(cmd.Status) {
		return nil, apperr.Invalid("status", "is not a known status")
	}

	order, err := h.repo.FindByID(cmd.OrderID)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	order.Status = cmd.Status
	if err := h.repo.Update(order); err != nil {
		return nil, err
	}

	if h.publisher != nil && previous != order.Status {
		if err := h.publisher.PublishOrderStatusChanged(ctx, order, previous); err != nil {
			logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("failed to publish order status event")
		}
	}
	return order, nil
}

// DeleteOrderCommand represents the command to delete an order and its
// items.
type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderHandler routes order deletion through the cascade engine.
type DeleteOrderHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteOrderHandler creates a new delete order handler.
func NewDeleteOrderHandler(cascader *integrity.Cascader) *DeleteOrderHandler {
	return &DeleteOrderHandler{cascader: cascader}
}

// Handle executes the delete order command.
func (h *DeleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if cmd.ID == 0 {
		return apperr.Invalid("id", "is required")
	}
	_, err := h.cascader.DeleteOrder(ctx, cmd.ID)
	return err
}

// DeleteAllOrdersHandler wipes the order tables.
type DeleteAllOrdersHandler struct {
	cascader *integrity.Cascader
}

// NewDeleteAllOrdersHandler creates a new delete all orders handler.
func NewDeleteAllOrdersHandler(cascader *integrity.Cascader) *DeleteAllOrdersHandler {
	return &DeleteAllOrdersHandler{cascader: cascader}
}

// Handle executes the delete all orders command.
func (h *DeleteAllOrdersHandler) Handle(ctx context.Context) error {
	return h.cascader.DeleteAllOrders(ctx)
}
