// Package importer - Test vòng lặp nhập: gom batch, flush theo ngưỡng, bỏ qua dòng hỏng.
package importer

import (
	"context"
	"io"
	"strings"
	"testing"

	"sales_dashboard/internal/api/transaction/models"
	"sales_dashboard/internal/global"
	"sales_dashboard/internal/logger"

	"github.com/stretchr/testify/assert"
)

func init() {
	global.InitValidator()
}

// sliceRowReader phát lại một dãy dòng cố định rồi trả io.EOF
type sliceRowReader struct {
	rows []CSVRow
	pos  int
}

func (s *sliceRowReader) Read() (CSVRow, error) {
	if s.pos >= len(s.rows) {
		return CSVRow{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

// newTestImporter tạo importer với flush giả, ghi lại từng batch đã flush
func newTestImporter(batchSize int, flushed *[][]models.Transaction) *Importer {
	return &Importer{
		flush: func(ctx context.Context, batch []models.Transaction) (int64, error) {
			copied := make([]models.Transaction, len(batch))
			copy(copied, batch)
			*flushed = append(*flushed, copied)
			return int64(len(batch)), nil
		},
		batchSize: batchSize,
		log:       logger.GetAppLogger(),
	}
}

func rowWithName(name string) CSVRow {
	row := validRow()
	row.CustomerName = name
	return row
}

func TestImportRows_BatchingAndFinalFlush(t *testing.T) {
	var flushed [][]models.Transaction
	imp := newTestImporter(3, &flushed)

	reader := &sliceRowReader{rows: []CSVRow{
		rowWithName("r1"), rowWithName("r2"), rowWithName("r3"),
		rowWithName("r4"), rowWithName("r5"), rowWithName("r6"),
		rowWithName("r7"),
	}}

	result, err := imp.importRows(context.Background(), reader)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.Imported)
	assert.Equal(t, int64(0), result.Skipped)

	// 7 dòng với ngưỡng 3: hai batch đầy và một batch dở cuối
	assert.Len(t, flushed, 3)
	assert.Len(t, flushed[0], 3)
	assert.Len(t, flushed[1], 3)
	assert.Len(t, flushed[2], 1)

	// Batch flush theo đúng thứ tự nguồn
	assert.Equal(t, "r1", flushed[0][0].CustomerName)
	assert.Equal(t, "r4", flushed[1][0].CustomerName)
	assert.Equal(t, "r7", flushed[2][0].CustomerName)
}

func TestImportRows_SkipsMalformedRows(t *testing.T) {
	var flushed [][]models.Transaction
	imp := newTestImporter(10, &flushed)

	badNumber := validRow()
	badNumber.Quantity = "not-a-number"
	badDate := validRow()
	badDate.Date = "yesterday"
	missingName := validRow()
	missingName.CustomerName = ""

	reader := &sliceRowReader{rows: []CSVRow{
		rowWithName("ok1"), badNumber, badDate, missingName, rowWithName("ok2"),
	}}

	result, err := imp.importRows(context.Background(), reader)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.Imported)
	assert.Equal(t, int64(3), result.Skipped)

	assert.Len(t, flushed, 1)
	assert.Equal(t, "ok1", flushed[0][0].CustomerName)
	assert.Equal(t, "ok2", flushed[0][1].CustomerName)
}

func TestImportRows_EmptySource(t *testing.T) {
	var flushed [][]models.Transaction
	imp := newTestImporter(5, &flushed)

	result, err := imp.importRows(context.Background(), &sliceRowReader{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.Imported)
	assert.Empty(t, flushed, "nguồn rỗng thì không được flush batch nào")
}

func TestImportRows_FlushErrorAborts(t *testing.T) {
	imp := &Importer{
		flush: func(ctx context.Context, batch []models.Transaction) (int64, error) {
			return 0, assert.AnError
		},
		batchSize: 1,
		log:       logger.GetAppLogger(),
	}

	reader := &sliceRowReader{rows: []CSVRow{rowWithName("r1"), rowWithName("r2")}}
	_, err := imp.importRows(context.Background(), reader)
	assert.Error(t, err, "lỗi bulk insert phải hủy cả lượt import")
}

func TestNewCSVRowReader_ReadsByColumnName(t *testing.T) {
	// Thứ tự cột không quan trọng, ánh xạ theo tên cột header
	src := strings.Join([]string{
		"Customer Name,Phone Number,Gender,Age,Customer Region,Customer Type,Product Name,Brand,Product Category,Tags,Quantity,Price per Unit,Discount Percentage,Total Amount,Final Amount,Date,Payment Method,Order Status",
		`Le Van C,0912345678,Male,41,Central,Guest,Rice Cooker,HomePro,Appliances,"kitchen,electric",1,900000,0,900000,900000,2024-02-20,Cash,Delivered`,
	}, "\n")

	reader, err := NewCSVRowReader(strings.NewReader(src))
	assert.NoError(t, err)

	row, err := reader.Read()
	assert.NoError(t, err)
	assert.Equal(t, "Le Van C", row.CustomerName)
	assert.Equal(t, "Central", row.CustomerRegion)
	assert.Equal(t, "kitchen,electric", row.Tags)
	assert.Equal(t, "2024-02-20", row.Date)

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err)
}
