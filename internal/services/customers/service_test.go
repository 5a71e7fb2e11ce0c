package customers

import (
	"testing"

	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	fields []repository.CustomerField
	rows   []repository.CustomerTableRow
}

func (f fakeStore) List() ([]repository.CustomerField, error) {
	return f.fields, nil
}

func (f fakeStore) Table(query string) ([]repository.CustomerTableRow, error) {
	return f.rows, nil
}

func TestTableFormatsTotals(t *testing.T) {
	id := uuid.New()
	svc := NewService(fakeStore{
		rows: []repository.CustomerTableRow{
			{ID: id, Name: "Delba", Email: "delba@x.com", TotalInvoices: 2, TotalPending: 1500, TotalPaid: 123456},
		},
	})

	rows, err := svc.Table("del")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Delba", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].TotalInvoices)
	assert.Equal(t, "$15.00", rows[0].TotalPending)
	assert.Equal(t, "$1,234.56", rows[0].TotalPaid)
}

func TestListPassesThrough(t *testing.T) {
	fields := []repository.CustomerField{{ID: uuid.New(), Name: "Acme"}}
	svc := NewService(fakeStore{fields: fields})

	got, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, fields, got)
}
