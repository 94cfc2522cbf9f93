package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

func (a *App) suppliersMenu(ctx context.Context) error {
	for {
		a.printMenu("SUPPLIERS", []string{
			"View All Suppliers",
			"Add New Supplier",
			"Update Supplier",
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
			err = a.viewAllSuppliers(ctx)
		case 2:
			err = a.addSupplier(ctx)
		case 3:
			err = a.updateSupplier(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewAllSuppliers(ctx context.Context) error {
	a.printHeader("ALL SUPPLIERS")

	suppliers, err := a.supplierSvc.ListSuppliers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing suppliers: %v\n", err)
	} else if len(suppliers) == 0 {
		fmt.Fprintln(a.out, "\n  No suppliers found!")
	} else {
		for _, s := range suppliers {
			fmt.Fprintf(a.out, "\n  ID: %d\n", s.ID)
			fmt.Fprintf(a.out, "  Name: %s\n", s.Name)
			fmt.Fprintf(a.out, "  Email: %s\n", s.Email)
			fmt.Fprintf(a.out, "  Phone: %s\n", s.Phone)
			fmt.Fprintln(a.out, strings.Repeat("-", 30))
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) addSupplier(ctx context.Context) error {
	a.printHeader("ADD NEW SUPPLIER")

	name, ok := a.input("Supplier Name")
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
	contactPerson, ok := a.input("Contact Person (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.supplierSvc.CreateSupplier(ctx, service.CreateSupplierParams{
		Name:          name,
		Email:         email,
		Phone:         phone,
		Address:       address,
		ContactPerson: contactPerson,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error adding supplier: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Supplier added successfully! ID: %d\n", id)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) updateSupplier(ctx context.Context) error {
	a.printHeader("UPDATE SUPPLIER")

	id, ok := a.int64Input("Supplier ID to update")
	if !ok {
		return errInputClosed
	}

	var params repository.UpdateSupplierParams
	if params.Name, ok = a.optionalInput("New name (leave empty to skip)"); !ok {
		return errInputClosed
	}
	if params.Email, ok = a.optionalInput("New email"); !ok {
		return errInputClosed
	}

	if params == (repository.UpdateSupplierParams{}) {
		fmt.Fprintln(a.out, "\n  No changes made!")
	} else if err := a.supplierSvc.UpdateSupplier(ctx, id, params); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating supplier: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Supplier updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) categoriesMenu(ctx context.Context) error {
	for {
		a.printMenu("CATEGORIES", []string{
			"View All Categories",
			"Add New Category",
			"Update Category",
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
			err = a.viewAllCategories(ctx)
		case 2:
			err = a.addCategory(ctx)
		case 3:
			err = a.updateCategory(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewAllCategories(ctx context.Context) error {
	a.printHeader("ALL CATEGORIES")

	categories, err := a.categorySvc.ListCategories(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing categories: %v\n", err)
	} else if len(categories) == 0 {
		fmt.Fprintln(a.out, "\n  No categories found!")
	} else {
		for _, c := range categories {
			fmt.Fprintf(a.out, "\n  ID: %d - %s\n", c.ID, c.Name)
			fmt.Fprintf(a.out, "  Description: %s\n", c.Description)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) addCategory(ctx context.Context) error {
	a.printHeader("ADD NEW CATEGORY")

	name, ok := a.input("Category Name")
	if !ok {
		return errInputClosed
	}
	description, ok := a.input("Description (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.categorySvc.CreateCategory(ctx, service.CreateCategoryParams{
		Name:        name,
		Description: description,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error adding category: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Category added successfully! ID: %d\n", id)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) updateCategory(ctx context.Context) error {
	a.printHeader("UPDATE CATEGORY")

	id, ok := a.int64Input("Category ID to update")
	if !ok {
		return errInputClosed
	}

	var params repository.UpdateCategoryParams
	if params.Name, ok = a.optionalInput("New name (leave empty to skip)"); !ok {
		return errInputClosed
	}
	if params.Description, ok = a.optionalInput("New description"); !ok {
		return errInputClosed
	}

	if params == (repository.UpdateCategoryParams{}) {
		fmt.Fprintln(a.out, "\n  No changes made!")
	} else if err := a.categorySvc.UpdateCategory(ctx, id, params); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating category: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Category updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}
