package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockroomhq/stockroom-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Init(filepath.Join(t.TempDir(), "data.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err, "missing data file should not be an error")
	assert.NotNil(t, doc.Products, "products collection should be initialized")
	assert.NotNil(t, doc.Orders, "orders collection should be initialized")
	assert.Empty(t, doc.Products)
	assert.Empty(t, doc.Orders)
}

func TestLoadEmptyFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte{}, 0644))

	doc, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
	assert.Empty(t, doc.Orders)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	_, err := s.Load()
	assert.Error(t, err, "corrupt data file should surface an error")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	doc := models.NewDocument()
	doc.Products = append(doc.Products, models.Product{
		ID:             "prod_abc",
		Name:           "Widget",
		Price:          decimal.NewFromInt(10),
		WarrantyMonths: 6,
		Category:       "General",
		Stock:          5,
	})
	doc.Orders = append(doc.Orders, models.Order{
		ID:        "ord_abc",
		Name:      "Alice",
		Phone:     "555-0100",
		ProductID: "prod_abc",
		Quantity:  2,
		Status:    models.StatusPending,
	})
	require.NoError(t, s.Save(doc))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	require.Len(t, loaded.Orders, 1)
	assert.Equal(t, "Widget", loaded.Products[0].Name)
	assert.True(t, loaded.Products[0].Price.Equal(decimal.NewFromInt(10)), "price should survive the round trip")
	assert.Equal(t, models.StatusPending, loaded.Orders[0].Status)
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	s := newTestStore(t)

	doc := models.NewDocument()
	doc.Products = append(doc.Products, models.Product{ID: "prod_1", Name: "First"})
	require.NoError(t, s.Save(doc))

	replacement := models.NewDocument()
	replacement.Products = append(replacement.Products, models.Product{ID: "prod_2", Name: "Second"})
	require.NoError(t, s.Save(replacement))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1, "save should replace, not merge")
	assert.Equal(t, "prod_2", loaded.Products[0].ID)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := Init(filepath.Join(dir, "nested", "data.json"))

	require.NoError(t, s.Save(models.NewDocument()))
	_, err := os.Stat(s.Path())
	assert.NoError(t, err, "data file should exist after save")
}
