package store

import "errors"

// Store boundary errors, mapped to HTTP statuses by the handlers.
var (
	ErrNotFound              = errors.New("not found")
	ErrMissingFields         = errors.New("missing required fields")
	ErrCartEmpty             = errors.New("cart is empty")
	ErrTransactionIDRequired = errors.New("transaction id required for instapay")
	ErrCustomerBlocked       = errors.New("customer is blocked")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrDuplicateCategory     = errors.New("category already exists")
	ErrCategoryProtected     = errors.New("category cannot be removed")
	ErrDuplicateEmail        = errors.New("email already in use")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidRole           = errors.New("invalid role")
	ErrLastSuperAdmin        = errors.New("cannot remove the last super admin")
)
