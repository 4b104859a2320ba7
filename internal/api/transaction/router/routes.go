// Package router đăng ký các route thuộc domain transaction.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "sales_dashboard/internal/api/router"
	transactionhdl "sales_dashboard/internal/api/transaction/handler"
)

// Register đăng ký tất cả route transaction lên v1.
// Toàn bộ domain là read-only: UI chỉ truy vấn, dữ liệu vào qua importer.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	transactionHandler, err := transactionhdl.NewTransactionHandler()
	if err != nil {
		return fmt.Errorf("create transaction handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "GET", "/", nil, transactionHandler.HandleFetchTransactions)
	apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "GET", "/filters", nil, transactionHandler.HandleFetchFilterOptions)
	return nil
}
