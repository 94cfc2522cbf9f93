package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

func (a *App) customersMenu(ctx context.Context) error {
	for {
		a.printMenu("CUSTOMERS", []string{
			"View All Customers",
			"Add New Customer",
			"Search Customers",
			"Update Customer",
			"View Customer Details",
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
			err = a.viewAllCustomers(ctx)
		case 2:
			err = a.addCustomer(ctx)
		case 3:
			err = a.searchCustomers(ctx)
		case 4:
			err = a.updateCustomer(ctx)
		case 5:
			err = a.viewCustomerDetails(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewAllCustomers(ctx context.Context) error {
	a.printHeader("ALL CUSTOMERS")

	customers, err := a.customerSvc.ListCustomers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing customers: %v\n", err)
	} else if len(customers) == 0 {
		fmt.Fprintln(a.out, "\n  No customers found!")
	} else {
		for _, c := range customers {
			fmt.Fprintf(a.out, "\n  ID: %d\n", c.ID)
			fmt.Fprintf(a.out, "  Name: %s\n", c.Name)
			fmt.Fprintf(a.out, "  Email: %s\n", c.Email)
			fmt.Fprintf(a.out, "  Phone: %s\n", c.Phone)
			fmt.Fprintln(a.out, strings.Repeat("-", 30))
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) addCustomer(ctx context.Context) error {
	a.printHeader("ADD NEW CUSTOMER")

	name, ok := a.input("Customer Name")
	if !ok {
		return errInputClosed
	}
	email, ok := a.input("Email (optional)")
	if !ok {
		return errInputClosed
	}
	phone, ok := a.input("Phone (optional)")
	if !ok {
		return errInputClosed
	}
	address, ok := a.input("Address (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.customerSvc.RegisterCustomer(ctx, service.RegisterCustomerParams{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error adding customer: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Customer added successfully! ID: %d\n", id)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) searchCustomers(ctx context.Context) error {
	a.printHeader("SEARCH CUSTOMERS")

	query, ok := a.input("Search query (name or email)")
	if !ok {
		return errInputClosed
	}

	customers, err := a.customerSvc.SearchCustomers(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error searching customers: %v\n", err)
	} else if len(customers) == 0 {
		fmt.Fprintln(a.out, "\n  No customers found!")
	} else {
		for _, c := range customers {
			fmt.Fprintf(a.out, "\n  ID: %d - %s (%s)\n", c.ID, c.Name, c.Email)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) updateCustomer(ctx context.Context) error {
	a.printHeader("UPDATE CUSTOMER")

	id, ok := a.int64Input("Customer ID to update")
	if !ok {
		return errInputClosed
	}

	customer, err := a.customerSvc.GetCustomer(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "\n  Customer not found!")
		if !a.pressEnter() {
			return errInputClosed
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n  Current: %s\n", customer.Name)

	var params repository.UpdateCustomerParams
	if params.Name, ok = a.optionalInput("New name (leave empty to keep current)"); !ok {
		return errInputClosed
	}
	if params.Email, ok = a.optionalInput("New email"); !ok {
		return errInputClosed
	}
	if params.Phone, ok = a.optionalInput("New phone"); !ok {
		return errInputClosed
	}
	if params.Address, ok = a.optionalInput("New address"); !ok {
		return errInputClosed
	}

	if params == (repository.UpdateCustomerParams{}) {
		fmt.Fprintln(a.out, "\n  No changes made!")
	} else if err := a.customerSvc.UpdateCustomer(ctx, id, params); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating customer: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Customer updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) viewCustomerDetails(ctx context.Context) error {
	a.printHeader("CUSTOMER DETAILS")

	id, ok := a.int64Input("Customer ID")
	if !ok {
		return errInputClosed
	}

	customer, orders, err := a.customerSvc.GetCustomerWithOrders(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "\n  Customer not found!")
	} else {
		fmt.Fprintf(a.out, "\n  Name: %s\n", customer.Name)
		fmt.Fprintf(a.out, "  Email: %s\n", customer.Email)
		fmt.Fprintf(a.out, "  Phone: %s\n", customer.Phone)
		fmt.Fprintf(a.out, "  Address: %s\n", customer.Address)
		fmt.Fprintf(a.out, "\n  Orders (%d):\n", len(orders))
		for _, order := range orders {
			fmt.Fprintf(a.out, "    - Order #%d: %s - $%.2f\n", order.ID, order.Status, order.TotalAmount)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}
