package transactionsvc

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"sales_dashboard/internal/api/transaction/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayout là định dạng ngày UI gửi lên cho startDate/endDate
const dateLayout = "2006-01-02"

// BuildTransactionFilter biên dịch tham số lọc thô từ UI thành filter MongoDB
// trên các key vật lý. Hàm thuần: không side-effect, không đụng tới store.
//
// Quy tắc:
//   - Các clause đang active được AND với nhau; search là $or trên n, p, pn.
//   - Field nhiều giá trị tách theo dấu phẩy thành $in.
//   - minAge/maxAge không parse được số thì bỏ qua clause đó, không trả lỗi.
//   - endDate được chuẩn hóa về 23:59:59.999 của ngày đó để bao trọn cả ngày;
//     thiếu bước này các bản ghi trong ngày kết thúc bị loại âm thầm.
//   - Không có filter nào active thì trả về bson.M{} (match tất cả).
func BuildTransactionFilter(in dto.TransactionFilterInput) bson.M {
	query := bson.M{}

	// 1. Search: substring không phân biệt hoa thường trên tên khách,
	// số điện thoại và tên sản phẩm. QuoteMeta để chuỗi tìm kiếm luôn
	// được hiểu là literal, không phải pattern.
	if in.Search != "" {
		searchRegex := primitive.Regex{Pattern: regexp.QuoteMeta(in.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"n": searchRegex},
			bson.M{"p": searchRegex},
			bson.M{"pn": searchRegex},
		}
	}

	// 2. Exact match theo tập giá trị (key vật lý)
	if in.Region != "" {
		query["r"] = bson.M{"$in": strings.Split(in.Region, ",")}
	}
	if in.Category != "" {
		query["c"] = bson.M{"$in": strings.Split(in.Category, ",")}
	}
	if in.PaymentMethod != "" {
		query["pm"] = bson.M{"$in": strings.Split(in.PaymentMethod, ",")}
	}
	if in.Status != "" {
		query["st"] = bson.M{"$in": strings.Split(in.Status, ",")}
	}
	if in.Gender != "" {
		query["g"] = bson.M{"$in": strings.Split(in.Gender, ",")}
	}

	// tg là mảng: $in khớp khi bất kỳ phần tử nào của mảng nằm trong tập giá trị
	if in.Tags != "" {
		query["tg"] = bson.M{"$in": strings.Split(in.Tags, ",")}
	}

	// 3. Khoảng tuổi (bao gồm 2 đầu). Giá trị không phải số bị bỏ qua.
	ageRange := bson.M{}
	if in.MinAge != "" {
		if minAge, err := strconv.Atoi(in.MinAge); err == nil {
			ageRange["$gte"] = minAge
		}
	}
	if in.MaxAge != "" {
		if maxAge, err := strconv.Atoi(in.MaxAge); err == nil {
			ageRange["$lte"] = maxAge
		}
	}
	if len(ageRange) > 0 {
		query["a"] = ageRange
	}

	// 4. Khoảng ngày giao dịch. startDate lấy 00:00:00.000 của ngày đó,
	// endDate được đẩy tới 23:59:59.999 cùng ngày. Ngày sai định dạng bị bỏ qua.
	dateRange := bson.M{}
	if in.StartDate != "" {
		if start, err := time.Parse(dateLayout, in.StartDate); err == nil {
			dateRange["$gte"] = start
		}
	}
	if in.EndDate != "" {
		if end, err := time.Parse(dateLayout, in.EndDate); err == nil {
			dateRange["$lte"] = endOfDay(end)
		}
	}
	if len(dateRange) > 0 {
		query["d"] = dateRange
	}

	return query
}

// endOfDay trả về thời điểm 23:59:59.999 của ngày đã cho
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}
