// Package dto chứa các kiểu input/output cho domain transaction.
package dto

import (
	"sales_dashboard/internal/api/transaction/models"
)

// TransactionFilterInput chứa các tham số lọc thô từ UI.
// Tất cả là string vì UI gửi dạng query param; các field nhiều giá trị
// phân tách bằng dấu phẩy. Field rỗng nghĩa là không lọc theo field đó.
type TransactionFilterInput struct {
	Search        string `json:"search"`        // Tìm kiếm mờ trên tên khách, số điện thoại, tên sản phẩm
	Region        string `json:"region"`        // Danh sách khu vực, phân tách bằng dấu phẩy
	Category      string `json:"category"`      // Danh sách danh mục
	PaymentMethod string `json:"paymentMethod"` // Danh sách phương thức thanh toán
	Status        string `json:"status"`        // Danh sách trạng thái đơn hàng
	Gender        string `json:"gender"`        // Danh sách giới tính
	Tags          string `json:"tags"`          // Danh sách tag
	MinAge        string `json:"minAge"`        // Tuổi tối thiểu (bao gồm)
	MaxAge        string `json:"maxAge"`        // Tuổi tối đa (bao gồm)
	StartDate     string `json:"startDate"`     // Ngày bắt đầu (YYYY-MM-DD, bao gồm cả ngày)
	EndDate       string `json:"endDate"`       // Ngày kết thúc (YYYY-MM-DD, bao gồm cả ngày)
}

// TransactionQueryInput chứa tham số lọc cộng với phân trang và sắp xếp
type TransactionQueryInput struct {
	TransactionFilterInput

	Page   int64  `json:"page"`                           // Trang hiện tại, 1-indexed
	Limit  int64  `json:"limit"`                          // Số bản ghi mỗi trang
	SortBy string `json:"sortBy" validate:"sort_field"`   // date | quantity | name | amount
	Order  string `json:"order" validate:"sort_order"`    // asc | desc
}

// TransactionMeta chứa thông tin phân trang trả về cho UI
type TransactionMeta struct {
	Total      int64 `json:"total"`      // Tổng số bản ghi khớp filter
	Page       int64 `json:"page"`       // Trang hiện tại
	TotalPages int64 `json:"totalPages"` // Tổng số trang
	Limit      int64 `json:"limit"`      // Số bản ghi mỗi trang
}

// TransactionList là kết quả của một lần truy vấn giao dịch
type TransactionList struct {
	Data []models.TransactionView `json:"data"`
	Meta TransactionMeta          `json:"meta"`
}

// TransactionFilterOptions chứa tập giá trị distinct cho các control lọc trên UI.
// Tags là tập distinct trên từng phần tử của mọi bản ghi, không phải trên cả mảng.
type TransactionFilterOptions struct {
	Regions        []string `json:"regions"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	Tags           []string `json:"tags"`
}
