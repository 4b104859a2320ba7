// Package importer chứa bộ nhập liệu full-refresh: đọc CSV nguồn theo dòng,
// ép sang bản ghi nén và bulk insert theo batch có kích thước chặn trên.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"sales_dashboard/internal/api/transaction/models"
	transactionsvc "sales_dashboard/internal/api/transaction/service"
	"sales_dashboard/internal/common"
	"sales_dashboard/internal/database"
	"sales_dashboard/internal/global"
	"sales_dashboard/internal/logger"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// DefaultBatchSize là ngưỡng flush mặc định khi config không chỉ định
const DefaultBatchSize = 5000

// RowReader đọc lần lượt từng dòng nguồn đã ánh xạ cột. Trả io.EOF khi hết nguồn.
type RowReader interface {
	Read() (CSVRow, error)
}

// csvRowReader bọc gocsv.Unmarshaller thành RowReader pull-based
type csvRowReader struct {
	unmarshaller *gocsv.Unmarshaller
}

// NewCSVRowReader tạo RowReader đọc từ một nguồn CSV có dòng header
func NewCSVRowReader(r io.Reader) (RowReader, error) {
	unmarshaller, err := gocsv.NewUnmarshaller(csv.NewReader(r), CSVRow{})
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeImportSource,
			fmt.Sprintf("Không đọc được header CSV: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return &csvRowReader{unmarshaller: unmarshaller}, nil
}

func (c *csvRowReader) Read() (CSVRow, error) {
	record, err := c.unmarshaller.Read()
	if err != nil {
		return CSVRow{}, err
	}
	row, ok := record.(CSVRow)
	if !ok {
		return CSVRow{}, fmt.Errorf("unexpected record type %T", record)
	}
	return row, nil
}

// FlushFunc ghi một batch bản ghi xuống store, trả về số bản ghi đã ghi
type FlushFunc func(ctx context.Context, batch []models.Transaction) (int64, error)

// Importer thực hiện một lượt nhập full-refresh.
// Mỗi lượt chạy tuần tự: batch kế tiếp không được build khi flush đang bay,
// để chặn trên bộ nhớ và giữ thứ tự batch theo nguồn.
type Importer struct {
	service   *transactionsvc.TransactionService
	flush     FlushFunc
	batchSize int
	log       *logrus.Logger
}

// Result tổng kết một lượt import
type Result struct {
	Imported int64 // Số bản ghi đã ghi xuống store
	Skipped  int64 // Số dòng bị bỏ qua vì không ép kiểu / không hợp lệ
}

// NewImporter tạo Importer nối với collection transactions thật
func NewImporter() (*Importer, error) {
	service, err := transactionsvc.NewTransactionService()
	if err != nil {
		return nil, fmt.Errorf("create transaction service: %w", err)
	}

	batchSize := DefaultBatchSize
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.SeedBatchSize > 0 {
		batchSize = global.MongoDB_ServerConfig.SeedBatchSize
	}

	return &Importer{
		service:   service,
		flush:     service.InsertMany,
		batchSize: batchSize,
		log:       logger.GetAppLogger(),
	}, nil
}

// Run chạy trọn một lượt import: drop collection cũ, tạo lại collection và index,
// rồi stream nguồn vào store. Lượt chạy thất bại giữa chừng có thể để lại collection
// nhập dở; bước drop ở đầu lượt sau làm cho việc chạy lại luôn an toàn.
func (imp *Importer) Run(ctx context.Context, source io.Reader) (*Result, error) {
	// 1. Destructive setup: bỏ collection cũ (không tồn tại coi như no-op)
	if err := imp.service.Drop(ctx); err != nil {
		return nil, err
	}
	imp.log.Info("Đã drop collection cũ (fresh start)")

	// 2. Tạo lại collection và đồng bộ index theo model
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		return nil, err
	}
	if err := database.CreateIndexes(ctx, imp.service.Collection(), models.Transaction{}); err != nil {
		return nil, err
	}

	reader, err := NewCSVRowReader(source)
	if err != nil {
		return nil, err
	}

	imp.log.Info("Bắt đầu stream import từ nguồn CSV")
	return imp.importRows(ctx, reader)
}

// importRows là vòng lặp nhập chính, tách riêng để test với RowReader và flush giả.
// Dòng không ép kiểu được hoặc thiếu field bắt buộc bị bỏ qua và ghi log,
// không làm hỏng cả lượt import; lỗi đọc nguồn và lỗi ghi store thì fatal.
func (imp *Importer) importRows(ctx context.Context, reader RowReader) (*Result, error) {
	result := &Result{}
	batch := make([]models.Transaction, 0, imp.batchSize)
	line := int64(0)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeImportSource,
				fmt.Sprintf("Lỗi đọc nguồn CSV tại dòng %d: %v", line+1, err),
				common.StatusBadRequest,
				err,
			)
		}
		line++

		tx, err := row.ToTransaction()
		if err != nil {
			imp.log.WithFields(logrus.Fields{"line": line}).WithError(err).Warn("Bỏ qua dòng không ép kiểu được")
			result.Skipped++
			continue
		}
		if err := global.Validate.Struct(tx); err != nil {
			imp.log.WithFields(logrus.Fields{"line": line}).WithError(err).Warn("Bỏ qua dòng thiếu field bắt buộc")
			result.Skipped++
			continue
		}

		batch = append(batch, tx)
		if len(batch) >= imp.batchSize {
			if err := imp.flushBatch(ctx, batch, result); err != nil {
				return nil, err
			}
			batch = batch[:0]
		}
	}

	// Flush phần batch còn dở sau khi nguồn cạn
	if len(batch) > 0 {
		if err := imp.flushBatch(ctx, batch, result); err != nil {
			return nil, err
		}
	}

	imp.log.WithFields(logrus.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Import toàn bộ dataset hoàn tất")
	return result, nil
}

func (imp *Importer) flushBatch(ctx context.Context, batch []models.Transaction, result *Result) error {
	inserted, err := imp.flush(ctx, batch)
	if err != nil {
		return err
	}
	result.Imported += inserted
	imp.log.Infof("Đã xử lý %d bản ghi...", result.Imported)
	return nil
}
