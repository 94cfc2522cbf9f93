package apperr

import "github.com/zionbm/zion/pkg/zerror"

// Recoverable business conditions. Anything else bubbling out of the
// repository layer is a storage failure and rolls back the enclosing
// unit of work.
var (
	ValidationErr = zerror.NewValidationFailed("VALIDATION_FAILED", "validation error")

	ErrCustomerNotFound = zerror.NewNotFound("CUSTOMER_NOT_FOUND", "customer not found")
	ErrSupplierNotFound = zerror.NewNotFound("SUPPLIER_NOT_FOUND", "supplier not found")
	ErrCategoryNotFound = zerror.NewNotFound("CATEGORY_NOT_FOUND", "category not found")
	ErrProductNotFound  = zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")
	ErrOrderNotFound    = zerror.NewNotFound("ORDER_NOT_FOUND", "order not found")

	// ErrInsufficientStock is returned when a requested line-item quantity
	// exceeds the product's quantity on hand.
	ErrInsufficientStock = zerror.NewUnprocessableEntity("INSUFFICIENT_STOCK", "requested quantity exceeds available stock")

	// ErrInvalidOrderStatus is returned for a status outside the fixed enumeration.
	ErrInvalidOrderStatus = zerror.NewBadRequest("INVALID_ORDER_STATUS", "unrecognized order status")

	// ErrOrderAlreadyCancelled is returned when cancelling an order that is
	// already cancelled. Cancellation is not idempotent.
	ErrOrderAlreadyCancelled = zerror.NewConflict("ORDER_ALREADY_CANCELLED", "order is already cancelled")
)
