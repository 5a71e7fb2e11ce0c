// Package validation parses raw invoice form input into typed values.
// Parsing is total: malformed input comes back as field errors, never
// as a panic or a storage-layer round trip.
package validation

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Op selects the summary message for a failed parse.
type Op string

const (
	OpCreate Op = "Create"
	OpUpdate Op = "Update"
)

const (
	msgCustomer = "Please select a customer."
	msgAmount   = "Please enter an amount greater than $0."
	msgStatus   = "Please select an invoice status."
)

// maxAmount caps the accepted major-unit amount so the scaled cents
// value fits int64 and stays cent-exact in a float64. Inf and larger
// finite inputs fail the same bound.
const maxAmount = 1e13

// InvoiceInput is a validated form. Amount is in major units (dollars);
// the mutation pipeline scales it to cents on write.
type InvoiceInput struct {
	CustomerID uuid.UUID
	Amount     float64
	Status     string
}

// FieldErrors carries every failed field, keyed by form field name,
// plus a summary message.
type FieldErrors struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func (e *FieldErrors) add(field, msg string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], msg)
}

// ParseInvoiceForm validates the customerId/amount/status fields of a
// submitted form. On failure it returns all accumulated field errors,
// not just the first.
func ParseInvoiceForm(form map[string]string, op Op) (InvoiceInput, *FieldErrors) {
	var (
		input InvoiceInput
		errs  FieldErrors
	)

	rawCustomer := strings.TrimSpace(form["customerId"])
	customerID, err := uuid.Parse(rawCustomer)
	if rawCustomer == "" || err != nil {
		errs.add("customerId", msgCustomer)
	} else {
		input.CustomerID = customerID
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(form["amount"]), 64)
	if err != nil || !(amount > 0) || amount > maxAmount {
		errs.add("amount", msgAmount)
	} else {
		input.Amount = amount
	}

	status := strings.TrimSpace(form["status"])
	if status != "pending" && status != "paid" {
		errs.add("status", msgStatus)
	} else {
		input.Status = status
	}

	if len(errs.Errors) > 0 {
		errs.Message = "Missing Fields. Failed to " + string(op) + " Invoice."
		return InvoiceInput{}, &errs
	}
	return input, nil
}
