package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zionbm/zion/internal/service"
)

func (a *App) ordersMenu(ctx context.Context) error {
	for {
		a.printMenu("ORDERS", []string{
			"View All Orders",
			"Create New Order",
			"View Order Details",
			"Add Item to Order",
			"Update Order Status",
			"Cancel Order",
		})

		choice, ok := a.intInput("Enter your choice")
		if !ok {
			return errInputClosed
		}

		var err error
		switch choice {
		case 0:
			return nil
		case 1:
			err = a.viewAllOrders(ctx)
		case 2:
			err = a.createOrder(ctx)
		case 3:
			err = a.viewOrderDetails(ctx)
		case 4:
			err = a.addItemToOrder(ctx)
		case 5:
			err = a.updateOrderStatus(ctx)
		case 6:
			err = a.cancelOrder(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewAllOrders(ctx context.Context) error {
	a.printHeader("ALL ORDERS")

	orders, err := a.orderSvc.ListOrders(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing orders: %v\n", err)
	} else if len(orders) == 0 {
		fmt.Fprintln(a.out, "\n  No orders found!")
	} else {
		for _, o := range orders {
			fmt.Fprintf(a.out, "\n  Order #%d | Status: %s\n", o.ID, o.Status)
			fmt.Fprintf(a.out, "  Total: $%.2f | Date: %s\n", o.TotalAmount, o.OrderDate.Format("2006-01-02 15:04"))
			fmt.Fprintln(a.out, strings.Repeat("-", 30))
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) createOrder(ctx context.Context) error {
	a.printHeader("CREATE NEW ORDER")

	customerID, ok := a.optionalInt64Input("Customer ID (optional, leave empty for walk-in)")
	if !ok {
		return errInputClosed
	}
	notes, ok := a.input("Order notes (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.orderSvc.CreateOrder(ctx, service.CreateOrderParams{
		CustomerID: customerID,
		Notes:      notes,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error creating order: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Order created successfully! Order ID: %d\n", id)
		fmt.Fprintln(a.out, "  Now you can add items to this order.")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) viewOrderDetails(ctx context.Context) error {
	a.printHeader("ORDER DETAILS")

	id, ok := a.int64Input("Order ID")
	if !ok {
		return errInputClosed
	}

	order, err := a.orderSvc.GetOrderDetails(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "\n  Order not found!")
	} else {
		customerName := "Walk-in"
		if order.CustomerName != nil {
			customerName = *order.CustomerName
		}

		fmt.Fprintf(a.out, "\n  Order #%d\n", order.ID)
		fmt.Fprintf(a.out, "  Status: %s\n", order.Status)
		fmt.Fprintf(a.out, "  Customer: %s\n", customerName)
		fmt.Fprintf(a.out, "  Date: %s\n", order.OrderDate.Format("2006-01-02 15:04"))
		fmt.Fprintln(a.out, "\n  Items:")
		for _, item := range order.Items {
			fmt.Fprintf(a.out, "    - %s x %d = $%.2f\n",
				item.ProductName, item.Quantity, float64(item.Quantity)*item.UnitPrice)
		}
		fmt.Fprintf(a.out, "\n  Total: $%.2f\n", order.TotalAmount)
		fmt.Fprintf(a.out, "  Notes: %s\n", order.Notes)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) addItemToOrder(ctx context.Context) error {
	a.printHeader("ADD ITEM TO ORDER")

	orderID, ok := a.int64Input("Order ID")
	if !ok {
		return errInputClosed
	}
	productID, ok := a.int64Input("Product ID")
	if !ok {
		return errInputClosed
	}
	quantity, ok := a.intInput("Quantity")
	if !ok {
		return errInputClosed
	}

	if err := a.orderSvc.AddItem(ctx, orderID, productID, quantity); err != nil {
		fmt.Fprintf(a.out, "\n  Error adding item: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Item added successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) updateOrderStatus(ctx context.Context) error {
	a.printHeader("UPDATE ORDER STATUS")

	orderID, ok := a.int64Input("Order ID")
	if !ok {
		return errInputClosed
	}

	fmt.Fprintln(a.out, "\n  Status options: pending, confirmed, processing, shipped, delivered, cancelled")
	status, ok := a.input("New status")
	if !ok {
		return errInputClosed
	}

	if err := a.orderSvc.UpdateStatus(ctx, orderID, strings.ToLower(status)); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating status: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Status updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) cancelOrder(ctx context.Context) error {
	a.printHeader("CANCEL ORDER")

	orderID, ok := a.int64Input("Order ID to cancel")
	if !ok {
		return errInputClosed
	}

	if err := a.orderSvc.Cancel(ctx, orderID); err != nil {
		fmt.Fprintf(a.out, "\n  Error cancelling order: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Order cancelled successfully! Stock restored.")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}
