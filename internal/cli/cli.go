// Package cli is an interactive menu-driven terminal frontend over the
// service layer. It is a peer of the HTTP shell: it collects input, renders
// output and holds no business logic.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zionbm/zion/internal/service"
)

type Services struct {
	Dashboard service.DashboardService
	Customer  service.CustomerService
	Supplier  service.SupplierService
	Category  service.CategoryService
	Product   service.ProductService
	Inventory service.InventoryService
	Order     service.OrderService
	Finance   service.FinanceService
}

// App runs the terminal menu loop until the user quits or input is exhausted.
type App struct {
	in  *bufio.Scanner
	out io.Writer

	dashboardSvc service.DashboardService
	customerSvc  service.CustomerService
	supplierSvc  service.SupplierService
	categorySvc  service.CategoryService
	productSvc   service.ProductService
	inventorySvc service.InventoryService
	orderSvc     service.OrderService
	financeSvc   service.FinanceService
}

func New(in io.Reader, out io.Writer, svcs Services) *App {
	return &App{
		in:           bufio.NewScanner(in),
		out:          out,
		dashboardSvc: svcs.Dashboard,
		customerSvc:  svcs.Customer,
		supplierSvc:  svcs.Supplier,
		categorySvc:  svcs.Category,
		productSvc:   svcs.Product,
		inventorySvc: svcs.Inventory,
		orderSvc:     svcs.Order,
		financeSvc:   svcs.Finance,
	}
}

func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "  WELCOME TO ZION BUSINESS MANAGER")
	fmt.Fprintln(a.out, "  Your Complete Business Solution")
	fmt.Fprintln(a.out, strings.Repeat("=", 50))

	for {
		a.printMenu("MAIN MENU", []string{
			"Dashboard",
			"Customers",
			"Products & Inventory",
			"Orders",
			"Suppliers",
			"Categories",
			"Financial Reports",
			"Inventory Reports",
		})

		choice, ok := a.intInput("Enter your choice")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case 0:
			fmt.Fprintln(a.out, "\n  Thank you for using Zion Business Manager!")
			fmt.Fprintln(a.out, "  Goodbye!")
			return nil
		case 1:
			err = a.dashboardMenu(ctx)
		case 2:
			err = a.customersMenu(ctx)
		case 3:
			err = a.productsMenu(ctx)
		case 4:
			err = a.ordersMenu(ctx)
		case 5:
			err = a.suppliersMenu(ctx)
		case 6:
			err = a.categoriesMenu(ctx)
		case 7:
			err = a.financialMenu(ctx)
		case 8:
			err = a.inventoryMenu(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
	}
}

func (a *App) printHeader(title string) {
	fmt.Fprintln(a.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintf(a.out, "  ZION BUSINESS MANAGER - %s\n", title)
	fmt.Fprintln(a.out, strings.Repeat("=", 50))
}

func (a *App) printMenu(title string, options []string) {
	a.printHeader(title)
	for i, option := range options {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, option)
	}
	fmt.Fprintln(a.out, "  0. Back to Main Menu")
	fmt.Fprintln(a.out, strings.Repeat("-", 50))
}

// input reads one trimmed line. ok is false once stdin is closed.
func (a *App) input(prompt string) (value string, ok bool) {
	fmt.Fprintf(a.out, "\n  %s: ", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) intInput(prompt string) (int, bool) {
	for {
		raw, ok := a.input(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(a.out, "  Please enter a valid number")
			continue
		}
		return value, true
	}
}

func (a *App) int64Input(prompt string) (int64, bool) {
	for {
		raw, ok := a.input(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Fprintln(a.out, "  Please enter a valid number")
			continue
		}
		return value, true
	}
}

func (a *App) floatInput(prompt string) (float64, bool) {
	for {
		raw, ok := a.input(prompt)
		if !ok {
			return 0, false
		}
		if raw == "" {
			return 0, true
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(a.out, "  Please enter a valid number")
			continue
		}
		return value, true
	}
}

// optionalInt64Input returns nil for an empty line.
func (a *App) optionalInt64Input(prompt string) (*int64, bool) {
	raw, ok := a.input(prompt)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, true
	}
	return &value, true
}

// optionalInput returns nil for an empty line, for keep-current update flows.
func (a *App) optionalInput(prompt string) (*string, bool) {
	raw, ok := a.input(prompt)
	if !ok {
		return nil, false
	}
	if raw == "" {
		return nil, true
	}
	return &raw, true
}

func (a *App) pressEnter() bool {
	fmt.Fprint(a.out, "\n  Press Enter to continue...")
	return a.in.Scan()
}

var errInputClosed = errors.New("input stream closed")
