// Package transactionhdl xử lý các yêu cầu HTTP cho domain transaction.
package transactionhdl

import (
	"fmt"
	"strconv"

	basehdl "sales_dashboard/internal/api/base/handler"
	"sales_dashboard/internal/api/transaction/dto"
	transactionsvc "sales_dashboard/internal/api/transaction/service"
	"sales_dashboard/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// maxPageSize là trần số bản ghi mỗi trang, chặn client kéo cả collection một lần
const maxPageSize = 100

// parsePagination đọc page/limit từ query param thô.
// Giá trị không parse được hoặc không dương rơi về mặc định (1/10);
// limit hợp lệ nhưng vượt trần bị kẹp xuống trần, không bị reset.
func parsePagination(pageRaw, limitRaw string) (int64, int64) {
	page, err := strconv.ParseInt(pageRaw, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(limitRaw, 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// TransactionHandler xử lý các yêu cầu liên quan đến giao dịch bán hàng
type TransactionHandler struct {
	TransactionService *transactionsvc.TransactionService
}

// NewTransactionHandler khởi tạo TransactionHandler mới
func NewTransactionHandler() (*TransactionHandler, error) {
	service, err := transactionsvc.NewTransactionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %v", err)
	}
	return &TransactionHandler{
		TransactionService: service,
	}, nil
}

// HandleFetchTransactions trả về danh sách giao dịch theo filter/sort/phân trang.
// Mọi tham số đều là query param dạng string; tham số xấu được degrade về mặc định
// thay vì trả lỗi, để UI không bao giờ vỡ trang vì một param sai.
func (h *TransactionHandler) HandleFetchTransactions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, limit := parsePagination(c.Query("page", "1"), c.Query("limit", "10"))

		input := dto.TransactionQueryInput{
			TransactionFilterInput: dto.TransactionFilterInput{
				Search:        c.Query("search"),
				Region:        c.Query("region"),
				Category:      c.Query("category"),
				PaymentMethod: c.Query("paymentMethod"),
				Status:        c.Query("status"),
				Gender:        c.Query("gender"),
				Tags:          c.Query("tags"),
				MinAge:        c.Query("minAge"),
				MaxAge:        c.Query("maxAge"),
				StartDate:     c.Query("startDate"),
				EndDate:       c.Query("endDate"),
			},
			Page:   page,
			Limit:  limit,
			SortBy: c.Query("sortBy", "date"),
			Order:  c.Query("order", "desc"),
		}

		// Context của request: client ngắt kết nối thì truy vấn cũng bị hủy theo
		result, err := h.TransactionService.FetchTransactions(c.Context(), input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn giao dịch thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleFetchFilterOptions trả về tập giá trị distinct cho các control lọc trên UI
func (h *TransactionHandler) HandleFetchFilterOptions(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		result, err := h.TransactionService.FetchFilterOptions(c.Context())
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Truy vấn filter options thất bại")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}
