package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales_dashboard/internal/api/transaction/models"
	"sales_dashboard/internal/common"
)

// CSVRow ánh xạ một dòng nguồn CSV theo tên cột gốc.
// Tất cả field đọc dạng string để việc ép kiểu (và lỗi ép kiểu) nằm ở ToTransaction,
// không để thư viện CSV quyết định chính sách xử lý dòng hỏng.
type CSVRow struct {
	CustomerName       string `csv:"Customer Name"`
	PhoneNumber        string `csv:"Phone Number"`
	Gender             string `csv:"Gender"`
	Age                string `csv:"Age"`
	CustomerRegion     string `csv:"Customer Region"`
	CustomerType       string `csv:"Customer Type"`
	ProductName        string `csv:"Product Name"`
	Brand              string `csv:"Brand"`
	ProductCategory    string `csv:"Product Category"`
	Tags               string `csv:"Tags"`
	Quantity           string `csv:"Quantity"`
	PricePerUnit       string `csv:"Price per Unit"`
	DiscountPercentage string `csv:"Discount Percentage"`
	TotalAmount        string `csv:"Total Amount"`
	FinalAmount        string `csv:"Final Amount"`
	Date               string `csv:"Date"`
	PaymentMethod      string `csv:"Payment Method"`
	OrderStatus        string `csv:"Order Status"`
}

// dateLayouts là các định dạng ngày chấp nhận trong cột Date
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ToTransaction ép một dòng CSV sang bản ghi nén.
// Field số rỗng coi như 0; field số không parse được trả lỗi để caller
// quyết định bỏ qua dòng. Tags tách theo dấu phẩy, trim từng tag.
func (r CSVRow) ToTransaction() (models.Transaction, error) {
	var zero models.Transaction

	age, err := parseIntField("Age", r.Age)
	if err != nil {
		return zero, transformError(err)
	}
	quantity, err := parseIntField("Quantity", r.Quantity)
	if err != nil {
		return zero, transformError(err)
	}
	pricePerUnit, err := parseFloatField("Price per Unit", r.PricePerUnit)
	if err != nil {
		return zero, transformError(err)
	}
	discount, err := parseFloatField("Discount Percentage", r.DiscountPercentage)
	if err != nil {
		return zero, transformError(err)
	}
	totalAmount, err := parseFloatField("Total Amount", r.TotalAmount)
	if err != nil {
		return zero, transformError(err)
	}
	finalAmount, err := parseFloatField("Final Amount", r.FinalAmount)
	if err != nil {
		return zero, transformError(err)
	}

	date, err := parseDateField(r.Date)
	if err != nil {
		return zero, transformError(err)
	}

	return models.Transaction{
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.PhoneNumber,
		CustomerGender: r.Gender,
		CustomerAge:    age,
		CustomerRegion: r.CustomerRegion,
		CustomerType:   r.CustomerType,

		ProductName:     r.ProductName,
		ProductBrand:    r.Brand,
		ProductCategory: r.ProductCategory,
		ProductTags:     splitTags(r.Tags),

		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Discount:     discount,
		TotalAmount:  totalAmount,
		FinalAmount:  finalAmount,

		Date:          date,
		PaymentMethod: r.PaymentMethod,
		OrderStatus:   r.OrderStatus,
	}, nil
}

// transformError bọc lỗi ép kiểu dòng vào error code import transform
func transformError(err error) error {
	return common.NewError(common.ErrCodeImportTransform, err.Error(), common.StatusBadRequest, err)
}

// splitTags tách cột Tags theo dấu phẩy và trim từng tag.
// Cột rỗng cho ra slice rỗng, không phải nil.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

func parseIntField(column, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("cột %s không phải số nguyên: %q", column, raw)
	}
	return v, nil
}

func parseFloatField(column, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cột %s không phải số: %q", column, raw)
	}
	return v, nil
}

func parseDateField(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("cột Date rỗng")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cột Date không đúng định dạng: %q", raw)
}
