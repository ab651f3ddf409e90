package validate

import (
	"errors"
	"testing"

	"shopfront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)

	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name       string
		input      model.ProductInput
		wantFields []string
	}{
		{
			name: "valid input",
			input: model.ProductInput{
				Name:        "Mug",
				Description: "Ceramic mug",
				Price:       "9.99",
				Image:       "http://x/mug.png",
			},
			wantFields: nil,
		},
		{
			name:       "everything missing",
			input:      model.ProductInput{},
			wantFields: []string{"name", "description", "price", "image"},
		},
		{
			name: "whitespace is not text",
			input: model.ProductInput{
				Name:        "   ",
				Description: "Ceramic mug",
				Price:       "9.99",
				Image:       "http://x/mug.png",
			},
			wantFields: []string{"name"},
		},
		{
			name: "price must be decimal",
			input: model.ProductInput{
				Name:        "Mug",
				Description: "Ceramic mug",
				Price:       "nine dollars",
				Image:       "http://x/mug.png",
			},
			wantFields: []string{"price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Product(&tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func TestProductPartial(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name       string
		input      model.ProductUpdate
		wantFields []string
	}{
		{
			name:       "single field",
			input:      model.ProductUpdate{Price: str("12.50")},
			wantFields: nil,
		},
		{
			name: "all fields",
			input: model.ProductUpdate{
				Name:        str("Mug"),
				Description: str("Ceramic mug"),
				Price:       str("9.99"),
				Image:       str("http://x/mug.png"),
			},
			wantFields: nil,
		},
		{
			name:       "empty update",
			input:      model.ProductUpdate{},
			wantFields: []string{"body"},
		},
		{
			name:       "explicitly cleared field rejected",
			input:      model.ProductUpdate{Name: str("")},
			wantFields: []string{"name"},
		},
		{
			name:       "bad price among good fields",
			input:      model.ProductUpdate{Name: str("Mug"), Price: str("free")},
			wantFields: []string{"price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProductPartial(&tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
		})
	}
}

func validOrder() model.OrderInput {
	return model.OrderInput{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		Items: []model.OrderItem{
			{ProductID: 1, ProductName: "Mug", Price: "10.00", Quantity: 2, Image: "http://x/mug.png"},
			{ProductID: 2, ProductName: "Coaster", Price: "5.00", Quantity: 1, Image: "http://x/coaster.png"},
		},
		Total: "25.00",
	}
}

func TestOrder(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		in := validOrder()
		assert.NoError(t, Order(&in))
	})

	t.Run("empty items", func(t *testing.T) {
		in := validOrder()
		in.Items = nil
		assert.ElementsMatch(t, []string{"items"}, fieldNames(t, Order(&in)))
	})

	t.Run("zero quantity names the item", func(t *testing.T) {
		in := validOrder()
		in.Items[1].Quantity = 0
		assert.ElementsMatch(t, []string{"items[1].quantity"}, fieldNames(t, Order(&in)))
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		in := validOrder()
		in.Items[0].Quantity = -3
		assert.ElementsMatch(t, []string{"items[0].quantity"}, fieldNames(t, Order(&in)))
	})

	t.Run("missing customer fields are all reported", func(t *testing.T) {
		in := validOrder()
		in.CustomerName = ""
		in.CustomerEmail = ""
		assert.ElementsMatch(t, []string{"customerName", "customerEmail"}, fieldNames(t, Order(&in)))
	})

	t.Run("item missing product id and image", func(t *testing.T) {
		in := validOrder()
		in.Items[0].ProductID = 0
		in.Items[0].Image = ""
		assert.ElementsMatch(t, []string{"items[0].productId", "items[0].image"}, fieldNames(t, Order(&in)))
	})

	t.Run("unparseable total", func(t *testing.T) {
		in := validOrder()
		in.Total = "lots"
		assert.ElementsMatch(t, []string{"total"}, fieldNames(t, Order(&in)))
	})
}
