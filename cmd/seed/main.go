// Binary seed nhập full-refresh dữ liệu giao dịch từ file CSV vào MongoDB.
// Chạy không tham số: mọi cấu hình (connection string, đường dẫn CSV, batch size)
// lấy từ environment. Exit code 0 khi thành công, khác 0 khi có lỗi.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sales_dashboard/config"
	"sales_dashboard/internal/database"
	"sales_dashboard/internal/global"
	"sales_dashboard/internal/importer"
	"sales_dashboard/internal/logger"
)

func main() {
	if err := logger.Init(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetAppLogger()

	if err := run(); err != nil {
		log.WithError(err).Error("Import thất bại")
		os.Exit(1)
	}
	os.Exit(0)
}

func run() error {
	log := logger.GetAppLogger()

	// Khởi tạo các biến toàn cục như server, trừ phần ensure collection/index:
	// importer tự drop và dựng lại collection trong lượt chạy của nó
	global.MongoDB_ColNames.Transactions = "transactions"
	global.InitValidator()

	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		return fmt.Errorf("failed to initialize config")
	}

	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		return fmt.Errorf("connect MongoDB: %w", err)
	}
	global.MongoDB_Session = client
	defer database.CloseInstance(client)

	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if _, err := global.RegistryCollections.Register(global.MongoDB_ColNames.Transactions, db.Collection(global.MongoDB_ColNames.Transactions)); err != nil {
		return fmt.Errorf("register collection: %w", err)
	}

	// Đường dẫn CSV tương đối được resolve từ thư mục gốc project
	csvPath := global.MongoDB_ServerConfig.SeedCSVPath
	if !filepath.IsAbs(csvPath) {
		csvPath = filepath.Join(config.RootDir(), csvPath)
	}

	source, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open CSV source %s: %w", csvPath, err)
	}
	defer source.Close()

	imp, err := importer.NewImporter()
	if err != nil {
		return err
	}

	log.Infof("Bắt đầu import từ %s", csvPath)
	result, err := imp.Run(context.Background(), source)
	if err != nil {
		return err
	}

	log.Infof("Hoàn tất: %d bản ghi đã import, %d dòng bị bỏ qua", result.Imported, result.Skipped)
	return nil
}
