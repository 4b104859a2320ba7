package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("sort_field", validateSortField)
	_ = Validate.RegisterValidation("sort_order", validateSortOrder)
}

// validateSortField kiểm tra field sắp xếp thuộc danh sách cho phép.
// Chuỗi rỗng hợp lệ (dùng giá trị mặc định).
func validateSortField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "date", "quantity", "name", "amount":
		return true
	}
	return false
}

// validateSortOrder kiểm tra thứ tự sắp xếp (asc/desc). Chuỗi rỗng hợp lệ.
func validateSortOrder(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return value == "asc" || value == "desc"
}
