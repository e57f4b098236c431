package domain

import "testing"

func TestProduct_UnitPrice(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected float64
	}{
		{"regular price", Product{Price: 100}, 100},
		{"discount wins", Product{Price: 400, DiscountPrice: 350}, 350},
		{"zero discount ignored", Product{Price: 250, DiscountPrice: 0}, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.UnitPrice(); got != tt.expected {
				t.Errorf("UnitPrice() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProduct_DisplayImage(t *testing.T) {
	p := Product{Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"}}
	if got := p.DisplayImage(); got != "/uploads/a.jpg" {
		t.Errorf("DisplayImage() = %q, want first image", got)
	}

	empty := Product{}
	if got := empty.DisplayImage(); got != "" {
		t.Errorf("DisplayImage() = %q, want empty string", got)
	}
}

func TestOrder_CloneIsDeep(t *testing.T) {
	original := Order{
		ID:    "o1",
		Items: []OrderItem{{ProductID: "p1", Price: 50, Quantity: 2}},
	}

	clone := original.Clone()
	clone.Items[0].Quantity = 99
	clone.Customer.Name = "Someone Else"

	if original.Items[0].Quantity != 2 {
		t.Error("Clone() must copy the items slice, not share it")
	}
	if original.Customer.Name != "" {
		t.Error("Clone() must not mutate the original customer")
	}
}

func TestSettings_ShippingCost(t *testing.T) {
	configured := Settings{ShippingAllBangladesh: 60}
	if got := configured.ShippingCost(); got != 60 {
		t.Errorf("ShippingCost() = %v, want 60", got)
	}

	unset := Settings{}
	if got := unset.ShippingCost(); got != DefaultShippingCost {
		t.Errorf("ShippingCost() = %v, want default %v", got, DefaultShippingCost)
	}
}
