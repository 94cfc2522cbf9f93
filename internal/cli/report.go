package cli

import (
	"context"
	"fmt"

	"github.com/zionbm/zion/internal/service"
)

func (a *App) dashboardMenu(ctx context.Context) error {
	a.printHeader("DASHBOARD")

	stats, err := a.dashboardSvc.Stats(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error loading dashboard: %v\n", err)
		if !a.pressEnter() {
			return errInputClosed
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n  Total Customers: %d\n", stats.TotalCustomers)
	fmt.Fprintf(a.out, "  Total Products: %d\n", stats.TotalProducts)
	fmt.Fprintf(a.out, "  Total Orders: %d\n", stats.TotalOrders)
	fmt.Fprintf(a.out, "  Total Revenue: $%.2f\n", stats.TotalRevenue)
	fmt.Fprintf(a.out, "  Pending Orders: %d\n", stats.PendingOrders)
	fmt.Fprintf(a.out, "  Low Stock Alerts: %d\n", stats.LowStockAlerts)

	fmt.Fprintln(a.out, "\n  Orders by Status:")
	for status, count := range stats.OrdersByStatus {
		fmt.Fprintf(a.out, "    - %s: %d\n", status, count)
	}

	fmt.Fprintln(a.out, "\n  Recent Orders:")
	for _, order := range stats.RecentOrders {
		fmt.Fprintf(a.out, "    Order #%d - %s - $%.2f\n", order.ID, order.Status, order.TotalAmount)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) financialMenu(ctx context.Context) error {
	for {
		a.printMenu("FINANCIAL REPORTS", []string{
			"View Financial Summary",
			"Record Transaction",
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
			err = a.viewFinancialSummary(ctx)
		case 2:
			err = a.recordTransaction(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewFinancialSummary(ctx context.Context) error {
	a.printHeader("FINANCIAL SUMMARY")

	summary, err := a.financeSvc.Summary(ctx, nil, nil)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error loading summary: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Revenue: $%.2f\n", summary.Revenue)
		fmt.Fprintf(a.out, "  Total Cost: $%.2f\n", summary.TotalCost)
		fmt.Fprintf(a.out, "  Profit: $%.2f\n", summary.Profit)

		fmt.Fprintln(a.out, "\n  By Transaction Type:")
		for transType, amount := range summary.ByType {
			fmt.Fprintf(a.out, "    - %s: $%.2f\n", transType, amount)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) recordTransaction(ctx context.Context) error {
	a.printHeader("RECORD TRANSACTION")

	orderID, ok := a.optionalInt64Input("Order ID (optional)")
	if !ok {
		return errInputClosed
	}
	transType, ok := a.input("Transaction type (payment, expense, etc.)")
	if !ok {
		return errInputClosed
	}
	amount, ok := a.floatInput("Amount")
	if !ok {
		return errInputClosed
	}
	paymentMethod, ok := a.input("Payment method (optional)")
	if !ok {
		return errInputClosed
	}
	notes, ok := a.input("Notes (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.financeSvc.RecordTransaction(ctx, service.RecordTransactionParams{
		Type:          transType,
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Notes:         notes,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error recording transaction: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Transaction recorded successfully! ID: %d\n", id)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) inventoryMenu(ctx context.Context) error {
	a.printHeader("INVENTORY REPORTS")

	report, err := a.inventorySvc.Report(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error loading report: %v\n", err)
		if !a.pressEnter() {
			return errInputClosed
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n  Total Products: %d\n", report.TotalProducts)
	fmt.Fprintf(a.out, "  Total Items in Stock: %d\n", report.TotalItems)
	fmt.Fprintf(a.out, "  Total Inventory Value: $%.2f\n", report.TotalInventoryValue)
	fmt.Fprintf(a.out, "  Low Stock Items: %d\n", report.LowStockCount)

	if len(report.LowStockProducts) > 0 {
		fmt.Fprintln(a.out, "\n  Low Stock Products:")
		for _, p := range report.LowStockProducts {
			fmt.Fprintf(a.out, "    - %s (Stock: %d)\n", p.Name, p.Quantity)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}
