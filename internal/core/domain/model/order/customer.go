package order

import (
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when attempting to use an improperly
// initialized Customer. Customers must be created via NewCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewCustomer constructor")

// Customer is a value object holding the contact details of the person an
// order is produced and delivered for. Only the phone number is mandatory;
// the remaining fields are free-form contact information.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	city    string

	guard guard.ConstructorGuard
}

// NewCustomer creates customer contact details. The phone number is required
// since it is the primary channel for confirming orders and arranging
// cash-on-delivery.
func NewCustomer(name string, phone string, address string, city string) (Customer, error) {
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}

	return Customer{
		name:    name,
		phone:   phone,
		address: address,
		city:    city,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Customer was properly constructed using the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the customer's street address.
func (c Customer) Address() string {
	return c.address
}

// City returns the customer's city.
func (c Customer) City() string {
	return c.city
}
