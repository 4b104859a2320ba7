// Package importer - Test ép kiểu dòng CSV sang bản ghi nén.
package importer

import (
	"reflect"
	"testing"
	"time"
)

func validRow() CSVRow {
	return CSVRow{
		CustomerName:       "Tran Thi B",
		PhoneNumber:        "0901234567",
		Gender:             "Female",
		Age:                "28",
		CustomerRegion:     "South",
		CustomerType:       "Member",
		ProductName:        "Sneakers",
		Brand:              "LocalBrand",
		ProductCategory:    "Footwear",
		Tags:               " casual , sport ",
		Quantity:           "2",
		PricePerUnit:       "350000",
		DiscountPercentage: "10",
		TotalAmount:        "700000",
		FinalAmount:        "630000",
		Date:               "2024-03-15",
		PaymentMethod:      "Card",
		OrderStatus:        "Delivered",
	}
}

func TestCSVRow_ToTransaction(t *testing.T) {
	tx, err := validRow().ToTransaction()
	if err != nil {
		t.Fatalf("dòng hợp lệ không được trả lỗi: %v", err)
	}

	if tx.CustomerName != "Tran Thi B" || tx.CustomerAge != 28 || tx.CustomerRegion != "South" {
		t.Errorf("facet customer ép sai: %+v", tx)
	}
	if tx.Quantity != 2 || tx.PricePerUnit != 350000 || tx.FinalAmount != 630000 {
		t.Errorf("facet sales ép sai: %+v", tx)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !tx.Date.Equal(want) {
		t.Errorf("ngày ép sai: %v", tx.Date)
	}
}

func TestCSVRow_TagsSplitAndTrim(t *testing.T) {
	tx, err := validRow().ToTransaction()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tx.ProductTags, []string{"casual", "sport"}) {
		t.Errorf("tags phải được tách theo dấu phẩy và trim: %v", tx.ProductTags)
	}

	row := validRow()
	row.Tags = ""
	tx, err = row.ToTransaction()
	if err != nil {
		t.Fatal(err)
	}
	if tx.ProductTags == nil || len(tx.ProductTags) != 0 {
		t.Errorf("cột tags rỗng phải cho slice rỗng, không phải nil: %v", tx.ProductTags)
	}
}

func TestCSVRow_EmptyNumericDefaultsToZero(t *testing.T) {
	row := validRow()
	row.Age = ""
	row.DiscountPercentage = ""
	tx, err := row.ToTransaction()
	if err != nil {
		t.Fatalf("field số rỗng coi như 0, không phải lỗi: %v", err)
	}
	if tx.CustomerAge != 0 || tx.Discount != 0 {
		t.Errorf("field số rỗng phải về 0: age=%d discount=%v", tx.CustomerAge, tx.Discount)
	}
}

func TestCSVRow_MalformedNumericIsError(t *testing.T) {
	row := validRow()
	row.Quantity = "abc"
	if _, err := row.ToTransaction(); err == nil {
		t.Error("số không parse được phải trả lỗi để caller bỏ qua dòng")
	}
}

func TestCSVRow_MalformedDateIsError(t *testing.T) {
	row := validRow()
	row.Date = "not-a-date"
	if _, err := row.ToTransaction(); err == nil {
		t.Error("ngày không parse được phải trả lỗi")
	}

	row.Date = ""
	if _, err := row.ToTransaction(); err == nil {
		t.Error("ngày rỗng phải trả lỗi vì Date là field bắt buộc")
	}
}
