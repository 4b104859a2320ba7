// Package common chứa hệ thống mã lỗi và chuyển đổi lỗi dùng chung cho toàn ứng dụng.
package common

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK      = 200 // Thành công
	StatusCreated = 201 // Tạo mới thành công

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusConflict        = 409 // Xung đột dữ liệu
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Timeout khi truy vấn
)

// Response Messages
const (
	MsgSuccess         = "Thao tác thành công"
	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgInternalError   = "Lỗi hệ thống"
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgDatabaseError   = "Lỗi tương tác với cơ sở dữ liệu"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: DB_001)
	Category    string // Phân loại lỗi (ví dụ: Database)
	SubCategory string // Phân loại con (ví dụ: Connection)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Lỗi cơ sở dữ liệu chung",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Lỗi kết nối cơ sở dữ liệu",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Lỗi truy vấn cơ sở dữ liệu",
	}

	ErrCodeDatabaseTimeout = ErrorCode{
		Code:        "DB_003",
		Category:    "Database",
		SubCategory: "Timeout",
		Description: "Truy vấn cơ sở dữ liệu vượt quá thời gian cho phép",
	}

	// Import Errors (IMP_xxx) - dành cho tiến trình nạp dữ liệu hàng loạt
	ErrCodeImportSource = ErrorCode{
		Code:        "IMP_001",
		Category:    "Import",
		SubCategory: "Source",
		Description: "Lỗi đọc nguồn dữ liệu CSV",
	}

	ErrCodeImportTransform = ErrorCode{
		Code:        "IMP_002",
		Category:    "Import",
		SubCategory: "Transform",
		Description: "Lỗi chuyển đổi dòng dữ liệu nguồn",
	}
)

// Error là cấu trúc lỗi chuẩn của hệ thống, mang theo mã lỗi và HTTP status.
type Error struct {
	Code       ErrorCode // Mã lỗi phân cấp
	Message    string    // Thông điệp cho client
	StatusCode int       // HTTP status tương ứng
	Details    any       // Chi tiết bổ sung (có thể nil)
}

// Error trả về thông điệp lỗi (triển khai interface error)
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	targetErr, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound     = NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate    = NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrConnection   = NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, nil)
	ErrQueryTimeout = NewError(ErrCodeDatabaseTimeout, "Truy vấn vượt quá thời gian cho phép", StatusGatewayTimeout, nil)
)

// MongoNamespaceNotFound là mã lỗi MongoDB khi drop một collection chưa tồn tại.
// Importer coi trường hợp này là no-op khi dọn collection cũ.
const MongoNamespaceNotFound = 26

// IsNamespaceNotFound kiểm tra lỗi "ns not found" khi drop collection
func IsNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == MongoNamespaceNotFound || cmdErr.Name == "NamespaceNotFound"
	}
	return false
}

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không convert các lỗi đã chuẩn hóa
	var systemErr *Error
	if errors.As(err, &systemErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Timeout từ context hoặc driver đều trả về lỗi timeout chuẩn
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseTimeout, "Truy vấn vượt quá thời gian cho phép", StatusGatewayTimeout, err)
	}

	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, "Lỗi kết nối cơ sở dữ liệu", StatusServiceUnavailable, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrCodeDatabaseQuery, "Dữ liệu trùng lặp trong MongoDB", StatusConflict, err)
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
