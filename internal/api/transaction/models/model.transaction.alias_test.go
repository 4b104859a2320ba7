// Package models - Test bảng alias và projection từ bản ghi nén sang hình logic.
package models

import (
	"testing"
	"time"
)

func TestFieldAliases_Bijective(t *testing.T) {
	seen := map[string]string{}
	for logical, physical := range fieldAliases {
		if prev, dup := seen[physical]; dup {
			t.Errorf("key vật lý %s bị dùng cho cả %s và %s", physical, prev, logical)
		}
		seen[physical] = logical
	}

	// Hai chiều phải khớp nhau từng cặp
	for logical, physical := range fieldAliases {
		got, ok := LogicalField(physical)
		if !ok || got != logical {
			t.Errorf("LogicalField(%s) = %q, muốn %q", physical, got, logical)
		}
		gotPhysical, ok := PhysicalField(logical)
		if !ok || gotPhysical != physical {
			t.Errorf("PhysicalField(%s) = %q, muốn %q", logical, gotPhysical, physical)
		}
	}
}

func TestFieldAliases_KnownMappings(t *testing.T) {
	cases := map[string]string{
		"customer.region":   "r",
		"customer.name":     "n",
		"product.category":  "c",
		"product.tags":      "tg",
		"sales.quantity":    "q",
		"sales.totalAmount": "ta",
		"meta.date":         "d",
	}
	for logical, want := range cases {
		got, ok := PhysicalField(logical)
		if !ok {
			t.Fatalf("thiếu alias cho %s", logical)
		}
		if got != want {
			t.Errorf("PhysicalField(%s) = %s, muốn %s", logical, got, want)
		}
	}

	if _, ok := PhysicalField("customer.unknown"); ok {
		t.Error("tên logic không tồn tại phải trả về ok=false")
	}
}

func TestTransaction_Project(t *testing.T) {
	date := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	tx := Transaction{
		CustomerName:    "Nguyen Van A",
		CustomerRegion:  "North",
		CustomerAge:     32,
		ProductName:     "T-Shirt",
		ProductCategory: "Clothing",
		ProductTags:     []string{"cotton", "summer"},
		Quantity:        3,
		TotalAmount:     450000,
		Date:            date,
		PaymentMethod:   "Cash",
		OrderStatus:     "Delivered",
	}

	view := tx.Project()

	if view.Customer.Name != "Nguyen Van A" || view.Customer.Region != "North" || view.Customer.Age != 32 {
		t.Errorf("facet customer chiếu sai: %+v", view.Customer)
	}
	if view.Product.Category != "Clothing" || len(view.Product.Tags) != 2 {
		t.Errorf("facet product chiếu sai: %+v", view.Product)
	}
	if view.Sales.Quantity != 3 || view.Sales.TotalAmount != 450000 {
		t.Errorf("facet sales chiếu sai: %+v", view.Sales)
	}
	if !view.Meta.Date.Equal(date) || view.Meta.Status != "Delivered" {
		t.Errorf("facet meta chiếu sai: %+v", view.Meta)
	}
}

func TestTransaction_ProjectNilTags(t *testing.T) {
	view := Transaction{}.Project()
	if view.Product.Tags == nil {
		t.Error("tags nil phải được chiếu thành slice rỗng để JSON ra [] thay vì null")
	}
}
