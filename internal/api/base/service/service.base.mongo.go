// Package basesvc chứa base service generic cho MongoDB.
// Các service domain embed BaseServiceMongoImpl và bổ sung nghiệp vụ riêng.
package basesvc

import (
	"context"
	"time"

	"sales_dashboard/internal/common"
	basemodels "sales_dashboard/internal/api/base/models"
	"sales_dashboard/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// ====================================
// INTERFACE VÀ STRUCT
// ====================================

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
	// ====================================

	// 1.1 Thao tác Insert
	InsertMany(ctx context.Context, data []Model) (int64, error)

	// 1.2 Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error)
	Drop(ctx context.Context) error

	// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
	// ================================

	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
}

// BaseServiceMongoImpl định nghĩa struct triển khai các phương thức cơ bản cho service
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl
// Parameters:
//   - collection: Collection MongoDB
//
// Returns:
//   - *BaseServiceMongoImpl[T]: Instance mới của BaseServiceMongoImpl
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Collection trả về collection MongoDB (dùng bởi subpackage khi cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// ====================================
// NHÓM 1: CÁC HÀM CHUẨN MONGODB DRIVER
// ====================================

// 1.1 Thao tác Insert
// -------------------

// InsertMany tạo nhiều bản ghi trong database, trả về số lượng đã insert.
// Không fetch lại các documents vừa tạo: hàm này phục vụ bulk import,
// caller chỉ cần số lượng để cộng dồn tiến độ.
func (s *BaseServiceMongoImpl[T]) InsertMany(ctx context.Context, data []T) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	var documents []interface{}
	now := time.Now().UnixMilli()

	for _, item := range data {
		dataMap, err := utility.ToMap(item)
		if err != nil {
			return 0, common.ErrInvalidFormat
		}
		dataMap["createdAt"] = now
		dataMap["updatedAt"] = now
		documents = append(documents, dataMap)
	}

	result, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return int64(len(result.InsertedIDs)), nil
}

// 1.2 Các thao tác khác
// --------------------

// CountDocuments đếm số lượng document
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	return count, nil
}

// Distinct lấy danh sách các giá trị duy nhất
func (s *BaseServiceMongoImpl[T]) Distinct(ctx context.Context, fieldName string, filter interface{}) ([]interface{}, error) {
	if filter == nil {
		filter = bson.D{}
	}

	values, err := s.collection.Distinct(ctx, fieldName, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	return values, nil
}

// Drop xóa toàn bộ collection. Collection chưa tồn tại không coi là lỗi,
// để full refresh chạy được cả trên database trống.
func (s *BaseServiceMongoImpl[T]) Drop(ctx context.Context) error {
	if err := s.collection.Drop(ctx); err != nil {
		if common.IsNamespaceNotFound(err) {
			return nil
		}
		return common.ConvertMongoError(err)
	}
	return nil
}

// ====================================
// NHÓM 2: CÁC HÀM TIỆN ÍCH MỞ RỘNG
// ====================================

// normalizePaging chuẩn hóa page/limit và tính skip cho phân trang.
// Đảm bảo page >= 1 và limit > 0 để skip không âm và trang không rỗng vô nghĩa.
func normalizePaging(page, limit int64) (int64, int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// computeTotalPage tính tổng số trang theo công thức làm tròn lên.
// Total bằng 0 cho ra 0 trang, không phải 1.
func computeTotalPage(total, limit int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// FindWithPagination tìm tất cả bản ghi với phân trang.
// Count tổng và find trang dữ liệu chạy song song trên cùng filter.
// Limit sau chuẩn hóa được set vào cursor nên số bản ghi trả về không bao giờ vượt limit.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}

	// Tạo options mới nếu chưa có
	if opts == nil {
		opts = options.Find()
	}

	page, limit, skip := normalizePaging(page, limit)
	opts.SetSkip(skip)
	opts.SetLimit(limit)

	var total int64
	var items []T

	g, gctx := errgroup.WithContext(ctx)

	// Lấy tổng số bản ghi
	g.Go(func() error {
		count, err := s.collection.CountDocuments(gctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		total = count
		return nil
	})

	// Lấy dữ liệu theo trang
	g.Go(func() error {
		cursor, err := s.collection.Find(gctx, filter, opts)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		defer cursor.Close(gctx)

		if err = cursor.All(gctx, &items); err != nil {
			return common.ConvertMongoError(err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	totalPage := computeTotalPage(total, limit)

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// DocumentExists kiểm tra document có tồn tại theo filter hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
