package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
)

func (a *App) productsMenu(ctx context.Context) error {
	for {
		a.printMenu("PRODUCTS & INVENTORY", []string{
			"View All Products",
			"Add New Product",
			"Search Products",
			"Update Product",
			"Adjust Stock",
			"View Low Stock",
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
			err = a.viewAllProducts(ctx)
		case 2:
			err = a.addProduct(ctx)
		case 3:
			err = a.searchProducts(ctx)
		case 4:
			err = a.updateProduct(ctx)
		case 5:
			err = a.adjustStock(ctx)
		case 6:
			err = a.viewLowStock(ctx)
		default:
			fmt.Fprintln(a.out, "  Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewAllProducts(ctx context.Context) error {
	a.printHeader("ALL PRODUCTS")

	products, err := a.productSvc.ListProducts(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing products: %v\n", err)
	} else if len(products) == 0 {
		fmt.Fprintln(a.out, "\n  No products found!")
	} else {
		for _, p := range products {
			fmt.Fprintf(a.out, "\n  ID: %d | %s\n", p.ID, p.Name)
			fmt.Fprintf(a.out, "  SKU: %s | Price: $%.2f\n", p.Sku, p.Price)
			fmt.Fprintf(a.out, "  Stock: %d | Min: %d\n", p.Quantity, p.MinQuantity)
			fmt.Fprintln(a.out, strings.Repeat("-", 30))
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) addProduct(ctx context.Context) error {
	a.printHeader("ADD NEW PRODUCT")

	name, ok := a.input("Product Name")
	if !ok {
		return errInputClosed
	}
	sku, ok := a.input("SKU")
	if !ok {
		return errInputClosed
	}
	price, ok := a.floatInput("Price")
	if !ok {
		return errInputClosed
	}
	description, ok := a.input("Description (optional)")
	if !ok {
		return errInputClosed
	}
	costPrice, ok := a.floatInput("Cost Price (optional, default 0)")
	if !ok {
		return errInputClosed
	}
	quantity, ok := a.intInput("Initial Quantity (default 0)")
	if !ok {
		return errInputClosed
	}
	minQuantity, ok := a.intInput("Minimum Quantity (default 0)")
	if !ok {
		return errInputClosed
	}
	categoryID, ok := a.optionalInt64Input("Category ID (optional)")
	if !ok {
		return errInputClosed
	}
	supplierID, ok := a.optionalInt64Input("Supplier ID (optional)")
	if !ok {
		return errInputClosed
	}

	id, err := a.productSvc.AddProduct(ctx, service.AddProductParams{
		Name:        name,
		Sku:         sku,
		Description: description,
		Price:       price,
		CostPrice:   costPrice,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		CategoryID:  categoryID,
		SupplierID:  supplierID,
	})
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error adding product: %v\n", err)
	} else {
		fmt.Fprintf(a.out, "\n  Product added successfully! ID: %d\n", id)
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) searchProducts(ctx context.Context) error {
	a.printHeader("SEARCH PRODUCTS")

	query, ok := a.input("Search query")
	if !ok {
		return errInputClosed
	}

	products, err := a.productSvc.SearchProducts(ctx, query)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error searching products: %v\n", err)
	} else if len(products) == 0 {
		fmt.Fprintln(a.out, "\n  No products found!")
	} else {
		for _, p := range products {
			fmt.Fprintf(a.out, "\n  ID: %d - %s ($%.2f)\n", p.ID, p.Name, p.Price)
			fmt.Fprintf(a.out, "  Stock: %d\n", p.Quantity)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) updateProduct(ctx context.Context) error {
	a.printHeader("UPDATE PRODUCT")

	id, ok := a.int64Input("Product ID to update")
	if !ok {
		return errInputClosed
	}

	product, err := a.productSvc.GetProduct(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "\n  Product not found!")
		if !a.pressEnter() {
			return errInputClosed
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n  Current: %s\n", product.Name)

	var params repository.UpdateProductParams
	if params.Name, ok = a.optionalInput("New name (leave empty to keep current)"); !ok {
		return errInputClosed
	}
	if params.Description, ok = a.optionalInput("New description"); !ok {
		return errInputClosed
	}

	priceRaw, ok := a.optionalInput("New price")
	if !ok {
		return errInputClosed
	}
	if priceRaw != nil {
		price, parseErr := strconv.ParseFloat(*priceRaw, 64)
		if parseErr != nil {
			fmt.Fprintln(a.out, "  Invalid price format!")
		} else {
			params.Price = &price
		}
	}

	if params == (repository.UpdateProductParams{}) {
		fmt.Fprintln(a.out, "\n  No changes made!")
	} else if err := a.productSvc.UpdateProduct(ctx, id, params); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating product: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Product updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) adjustStock(ctx context.Context) error {
	a.printHeader("ADJUST STOCK")

	id, ok := a.int64Input("Product ID")
	if !ok {
		return errInputClosed
	}

	product, err := a.productSvc.GetProduct(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "\n  Product not found!")
		if !a.pressEnter() {
			return errInputClosed
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n  Current Stock: %d\n", product.Quantity)

	delta, ok := a.intInput("Quantity change (+ to add, - to subtract)")
	if !ok {
		return errInputClosed
	}

	if err := a.inventorySvc.AdjustStock(ctx, id, delta); err != nil {
		fmt.Fprintf(a.out, "\n  Error updating stock: %v\n", err)
	} else {
		fmt.Fprintln(a.out, "\n  Stock updated successfully!")
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}

func (a *App) viewLowStock(ctx context.Context) error {
	a.printHeader("LOW STOCK ALERTS")

	products, err := a.productSvc.ListLowStock(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "\n  Error listing low stock: %v\n", err)
	} else if len(products) == 0 {
		fmt.Fprintln(a.out, "\n  All products are well stocked!")
	} else {
		fmt.Fprintf(a.out, "\n  %d product(s) need restocking:\n", len(products))
		for _, p := range products {
			fmt.Fprintf(a.out, "\n  ID: %d - %s\n", p.ID, p.Name)
			fmt.Fprintf(a.out, "  Current: %d | Minimum: %d\n", p.Quantity, p.MinQuantity)
		}
	}

	if !a.pressEnter() {
		return errInputClosed
	}
	return nil
}
