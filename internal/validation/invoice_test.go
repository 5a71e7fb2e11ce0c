package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceFormValid(t *testing.T) {
	customerID := uuid.New()
	input, errs := ParseInvoiceForm(map[string]string{
		"customerId": customerID.String(),
		"amount":     "50.00",
		"status":     "paid",
	}, OpCreate)

	require.Nil(t, errs)
	assert.Equal(t, customerID, input.CustomerID)
	assert.Equal(t, 50.0, input.Amount)
	assert.Equal(t, "paid", input.Status)
}

func TestParseInvoiceFormFieldErrors(t *testing.T) {
	customerID := uuid.New().String()

	cases := []struct {
		name   string
		form   map[string]string
		fields []string
	}{
		{"missing customer", map[string]string{"amount": "10", "status": "pending"}, []string{"customerId"}},
		{"malformed customer id", map[string]string{"customerId": "not-a-uuid", "amount": "10", "status": "pending"}, []string{"customerId"}},
		{"zero amount", map[string]string{"customerId": customerID, "amount": "0", "status": "pending"}, []string{"amount"}},
		{"negative amount", map[string]string{"customerId": customerID, "amount": "-3.50", "status": "paid"}, []string{"amount"}},
		{"non-numeric amount", map[string]string{"customerId": customerID, "amount": "abc", "status": "paid"}, []string{"amount"}},
		{"amount overflows cents", map[string]string{"customerId": customerID, "amount": "1e17", "status": "paid"}, []string{"amount"}},
		{"infinite amount", map[string]string{"customerId": customerID, "amount": "Inf", "status": "paid"}, []string{"amount"}},
		{"not-a-number amount", map[string]string{"customerId": customerID, "amount": "NaN", "status": "paid"}, []string{"amount"}},
		{"bad status", map[string]string{"customerId": customerID, "amount": "10", "status": "overdue"}, []string{"status"}},
		{"everything wrong", map[string]string{}, []string{"customerId", "amount", "status"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ParseInvoiceForm(tc.form, OpCreate)
			require.NotNil(t, errs)
			assert.Len(t, errs.Errors, len(tc.fields))
			for _, f := range tc.fields {
				assert.NotEmpty(t, errs.Errors[f], "expected error for field %s", f)
			}
		})
	}
}

func TestParseInvoiceFormMessages(t *testing.T) {
	_, errs := ParseInvoiceForm(map[string]string{}, OpCreate)
	require.NotNil(t, errs)
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", errs.Message)
	assert.Equal(t, []string{"Please select a customer."}, errs.Errors["customerId"])
	assert.Equal(t, []string{"Please enter an amount greater than $0."}, errs.Errors["amount"])
	assert.Equal(t, []string{"Please select an invoice status."}, errs.Errors["status"])

	_, errs = ParseInvoiceForm(map[string]string{}, OpUpdate)
	require.NotNil(t, errs)
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", errs.Message)
}

func TestParseInvoiceFormNeverScales(t *testing.T) {
	// The validator returns major units untouched; scaling to cents is
	// the pipeline's job.
	input, errs := ParseInvoiceForm(map[string]string{
		"customerId": uuid.New().String(),
		"amount":     "0.01",
		"status":     "pending",
	}, OpUpdate)
	require.Nil(t, errs)
	assert.Equal(t, 0.01, input.Amount)
}
