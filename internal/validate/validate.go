// Package validate maps untrusted request payloads to aggregated field
// errors. Validation never fails fast: callers get every bad field in
// one pass so forms can surface all errors at once.
package validate

import (
	"fmt"
	"strings"

	"shopfront/internal/model"

	"github.com/shopspring/decimal"
)

// Product validates a product creation payload.
func Product(in *model.ProductInput) error {
	verr := &model.ValidationError{}
	requireText(verr, "name", in.Name)
	requireText(verr, "description", in.Description)
	requireDecimal(verr, "price", in.Price)
	requireText(verr, "image", in.Image)
	return verr.ErrOrNil()
}

// ProductPartial validates a partial product update. Only fields
// present in the payload are checked; an update with no fields at all
// is rejected.
func ProductPartial(in *model.ProductUpdate) error {
	verr := &model.ValidationError{}
	if in.IsEmpty() {
		verr.Add("body", "at least one field is required")
		return verr
	}
	if in.Name != nil {
		requireText(verr, "name", *in.Name)
	}
	if in.Description != nil {
		requireText(verr, "description", *in.Description)
	}
	if in.Price != nil {
		requireDecimal(verr, "price", *in.Price)
	}
	if in.Image != nil {
		requireText(verr, "image", *in.Image)
	}
	return verr.ErrOrNil()
}

// Order validates a checkout payload, including every line item.
func Order(in *model.OrderInput) error {
	verr := &model.ValidationError{}
	requireText(verr, "customerName", in.CustomerName)
	requireText(verr, "customerEmail", in.CustomerEmail)
	requireText(verr, "customerPhone", in.CustomerPhone)
	requireText(verr, "customerAddress", in.CustomerAddress)

	if len(in.Items) == 0 {
		verr.Add("items", "at least one item is required")
	}
	for i, item := range in.Items {
		field := func(name string) string {
			return fmt.Sprintf("items[%d].%s", i, name)
		}
		if item.ProductID <= 0 {
			verr.Add(field("productId"), "must be a positive integer")
		}
		requireText(verr, field("productName"), item.ProductName)
		requireDecimal(verr, field("price"), item.Price)
		if item.Quantity <= 0 {
			verr.Add(field("quantity"), "must be greater than zero")
		}
		requireText(verr, field("image"), item.Image)
	}

	requireDecimal(verr, "total", in.Total)
	return verr.ErrOrNil()
}

func requireText(verr *model.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "is required")
	}
}

func requireDecimal(verr *model.ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.Add(field, "is required")
		return
	}
	if _, err := decimal.NewFromString(value); err != nil {
		verr.Add(field, "must be a decimal number")
	}
}
