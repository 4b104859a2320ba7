package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction đại diện cho một giao dịch bán hàng.
// Mỗi field được lưu dưới key vật lý ngắn (n, p, r, ...) để giảm kích thước document;
// tên logic theo facet (customer/product/sales/meta) nằm trong bảng alias ở model.transaction.alias.go.
type Transaction struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"` // ID của giao dịch

	// ===== CUSTOMER FACET =====
	CustomerName   string `json:"customerName" bson:"n" validate:"required"`        // Tên khách hàng
	CustomerPhone  string `json:"customerPhone" bson:"p"`                           // Số điện thoại
	CustomerGender string `json:"customerGender" bson:"g"`                          // Giới tính
	CustomerAge    int    `json:"customerAge" bson:"a"`                             // Tuổi
	CustomerRegion string `json:"customerRegion" bson:"r" index:"single;compound:idx_region_date"` // Khu vực khách hàng
	CustomerType   string `json:"customerType" bson:"ct"`                           // Loại khách hàng

	// ===== PRODUCT FACET =====
	ProductName     string   `json:"productName" bson:"pn"` // Tên sản phẩm
	ProductBrand    string   `json:"productBrand" bson:"b"` // Thương hiệu
	ProductCategory string   `json:"productCategory" bson:"c" index:"single;compound:idx_category_quantity"` // Danh mục sản phẩm
	ProductTags     []string `json:"productTags" bson:"tg"` // Danh sách tag của sản phẩm

	// ===== SALES FACET =====
	Quantity     int     `json:"quantity" bson:"q" validate:"required" index:"compound:idx_category_quantity,order:-1"` // Số lượng
	PricePerUnit float64 `json:"pricePerUnit" bson:"ppu"` // Đơn giá
	Discount     float64 `json:"discount" bson:"dsc"`     // Phần trăm giảm giá
	TotalAmount  float64 `json:"totalAmount" bson:"ta"`   // Tổng tiền trước giảm giá
	FinalAmount  float64 `json:"finalAmount" bson:"fa"`   // Tổng tiền sau giảm giá

	// ===== META FACET =====
	Date          time.Time `json:"date" bson:"d" validate:"required" index:"single,order:-1;compound:idx_region_date"` // Ngày giao dịch
	PaymentMethod string    `json:"paymentMethod" bson:"pm"` // Phương thức thanh toán
	OrderStatus   string    `json:"orderStatus" bson:"st"`   // Trạng thái đơn hàng

	CreatedAt int64 `json:"-" bson:"createdAt,omitempty"` // Thời gian import bản ghi
	UpdatedAt int64 `json:"-" bson:"updatedAt,omitempty"` // Thời gian cập nhật bản ghi
}
