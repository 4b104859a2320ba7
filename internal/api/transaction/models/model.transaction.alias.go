package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bảng alias ánh xạ tên logic dạng facet.path sang key vật lý trong store.
// Mapping là song ánh: mỗi key vật lý ứng với đúng một tên logic và ngược lại.
var fieldAliases = map[string]string{
	"customer.name":   "n",
	"customer.phone":  "p",
	"customer.gender": "g",
	"customer.age":    "a",
	"customer.region": "r",
	"customer.type":   "ct",

	"product.name":     "pn",
	"product.brand":    "b",
	"product.category": "c",
	"product.tags":     "tg",

	"sales.quantity":     "q",
	"sales.pricePerUnit": "ppu",
	"sales.discount":     "dsc",
	"sales.totalAmount":  "ta",
	"sales.finalAmount":  "fa",

	"meta.date":          "d",
	"meta.paymentMethod": "pm",
	"meta.status":        "st",
}

// physicalToLogical là chiều ngược của fieldAliases, build một lần lúc khởi động
var physicalToLogical = func() map[string]string {
	m := make(map[string]string, len(fieldAliases))
	for logical, physical := range fieldAliases {
		m[physical] = logical
	}
	return m
}()

// PhysicalField trả về key vật lý của một tên logic facet.path
func PhysicalField(logical string) (string, bool) {
	physical, ok := fieldAliases[logical]
	return physical, ok
}

// LogicalField trả về tên logic facet.path của một key vật lý
func LogicalField(physical string) (string, bool) {
	logical, ok := physicalToLogical[physical]
	return logical, ok
}

// TransactionView là hình chiếu logic của Transaction: các field gom theo facet,
// dùng làm shape trả về cho UI. Không lưu trong store.
type TransactionView struct {
	ID       primitive.ObjectID   `json:"id"`
	Customer CustomerFacet        `json:"customer"`
	Product  ProductFacet         `json:"product"`
	Sales    SalesFacet           `json:"sales"`
	Meta     TransactionMetaFacet `json:"meta"`
}

// CustomerFacet nhóm các field về khách hàng
type CustomerFacet struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
	Region string `json:"region"`
	Type   string `json:"type"`
}

// ProductFacet nhóm các field về sản phẩm
type ProductFacet struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// SalesFacet nhóm các field về doanh số
type SalesFacet struct {
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Discount     float64 `json:"discount"`
	TotalAmount  float64 `json:"totalAmount"`
	FinalAmount  float64 `json:"finalAmount"`
}

// TransactionMetaFacet nhóm các field meta của giao dịch
type TransactionMetaFacet struct {
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
}

// Project chiếu bản ghi đã lưu sang hình logic theo facet.
// Hàm thuần: không đụng tới store, không giữ tham chiếu tới receiver.
func (t Transaction) Project() TransactionView {
	tags := t.ProductTags
	if tags == nil {
		tags = []string{}
	}
	return TransactionView{
		ID: t.ID,
		Customer: CustomerFacet{
			Name:   t.CustomerName,
			Phone:  t.CustomerPhone,
			Gender: t.CustomerGender,
			Age:    t.CustomerAge,
			Region: t.CustomerRegion,
			Type:   t.CustomerType,
		},
		Product: ProductFacet{
			Name:     t.ProductName,
			Brand:    t.ProductBrand,
			Category: t.ProductCategory,
			Tags:     tags,
		},
		Sales: SalesFacet{
			Quantity:     t.Quantity,
			PricePerUnit: t.PricePerUnit,
			Discount:     t.Discount,
			TotalAmount:  t.TotalAmount,
			FinalAmount:  t.FinalAmount,
		},
		Meta: TransactionMetaFacet{
			Date:          t.Date,
			PaymentMethod: t.PaymentMethod,
			Status:        t.OrderStatus,
		},
	}
}
