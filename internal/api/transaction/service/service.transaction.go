// Package transactionsvc chứa service data access cho domain transaction:
// truy vấn giao dịch theo filter/sort/phân trang và tập giá trị distinct cho UI.
package transactionsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "sales_dashboard/internal/api/base/service"
	"sales_dashboard/internal/api/transaction/dto"
	"sales_dashboard/internal/api/transaction/models"
	"sales_dashboard/internal/common"
	"sales_dashboard/internal/global"
	"sales_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// sortFieldMap ánh xạ key sắp xếp logic từ UI sang key vật lý trong store
var sortFieldMap = map[string]string{
	"date":     "d",
	"quantity": "q",
	"name":     "n",
	"amount":   "ta",
}

// resolveSort chuẩn hóa tham số sắp xếp từ UI thành key vật lý và chiều sắp xếp.
// Giá trị lạ đi qua validator bị coi như không gửi: sortBy rơi về date (d),
// order chỉ nhận asc là tăng dần, mọi giá trị khác là giảm dần.
func resolveSort(sortBy, order string) (string, int) {
	if err := global.Validate.Var(sortBy, "sort_field"); err != nil {
		sortBy = ""
	}
	if err := global.Validate.Var(order, "sort_order"); err != nil {
		order = ""
	}

	field, ok := sortFieldMap[sortBy]
	if !ok {
		field = "d"
	}
	direction := -1
	if order == "asc" {
		direction = 1
	}
	return field, direction
}

// TransactionService là service truy vấn giao dịch bán hàng
type TransactionService struct {
	*basesvc.BaseServiceMongoImpl[models.Transaction]
	queryTimeout time.Duration
}

// NewTransactionService tạo mới TransactionService
func NewTransactionService() (*TransactionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("failed to get transactions collection: %v", common.ErrNotFound)
	}

	timeout := 15 * time.Second
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.QueryTimeout > 0 {
		timeout = time.Duration(global.MongoDB_ServerConfig.QueryTimeout) * time.Second
	}

	return &TransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Transaction](collection),
		queryTimeout:         timeout,
	}, nil
}

// FetchTransactions truy vấn giao dịch theo filter, sắp xếp và phân trang.
// Trang dữ liệu và count tổng chạy song song trên cùng một filter.
//
// Quy tắc degrade: sortBy không hợp lệ rơi về date, order không hợp lệ rơi về desc,
// page/limit không hợp lệ rơi về mặc định. Tham số xấu từ UI không bao giờ gây lỗi.
func (s *TransactionService) FetchTransactions(ctx context.Context, input dto.TransactionQueryInput) (*dto.TransactionList, error) {
	sortField, sortDirection := resolveSort(input.SortBy, input.Order)

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	filter := BuildTransactionFilter(input.TransactionFilterInput)
	opts := options.Find().SetSort(bson.D{{Key: sortField, Value: sortDirection}})

	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}

	// Chiếu bản ghi đã lưu sang hình logic theo facet cho UI
	views := make([]models.TransactionView, 0, len(result.Items))
	for _, item := range result.Items {
		views = append(views, item.Project())
	}

	return &dto.TransactionList{
		Data: views,
		Meta: dto.TransactionMeta{
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPage,
			Limit:      result.Limit,
		},
	}, nil
}

// FetchFilterOptions trả về tập giá trị distinct của 4 field lọc để UI dựng
// các control chọn. 4 distinct chạy song song, không bị ảnh hưởng bởi filter hiện tại.
func (s *TransactionService) FetchFilterOptions(ctx context.Context) (*dto.TransactionFilterOptions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var regions, categories, paymentMethods, tags []interface{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		regions, err = s.Distinct(gctx, "r", nil)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Distinct(gctx, "c", nil)
		return err
	})
	g.Go(func() error {
		var err error
		paymentMethods, err = s.Distinct(gctx, "pm", nil)
		return err
	})
	g.Go(func() error {
		// distinct trên field mảng trả về tập các phần tử, không phải tập các mảng
		var err error
		tags, err = s.Distinct(gctx, "tg", nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.TransactionFilterOptions{
		Regions:        utility.ToStringSlice(regions),
		Categories:     utility.ToStringSlice(categories),
		PaymentMethods: utility.ToStringSlice(paymentMethods),
		Tags:           utility.ToStringSlice(tags),
	}, nil
}
