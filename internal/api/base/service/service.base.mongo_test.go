package basesvc

import "testing"

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
		wantSkip  int64
	}{
		{"giá trị hợp lệ giữ nguyên", 2, 5, 2, 5, 5},
		{"trang đầu không skip", 1, 10, 1, 10, 0},
		{"page 0 về trang đầu", 0, 10, 1, 10, 0},
		{"page âm về trang đầu", -3, 10, 1, 10, 0},
		{"limit 0 về mặc định", 1, 0, 1, 10, 0},
		{"limit âm về mặc định", 4, -1, 4, 10, 30},
		{"trang sâu skip đúng", 7, 25, 7, 25, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, skip := normalizePaging(tt.page, tt.limit)
			if page != tt.wantPage {
				t.Errorf("page: muốn %d, nhận %d", tt.wantPage, page)
			}
			if limit != tt.wantLimit {
				t.Errorf("limit: muốn %d, nhận %d", tt.wantLimit, limit)
			}
			if skip != tt.wantSkip {
				t.Errorf("skip: muốn %d, nhận %d", tt.wantSkip, skip)
			}
		})
	}
}

func TestComputeTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int64
		want  int64
	}{
		// 12 bản ghi, 5 mỗi trang: trang cuối chỉ có 2 bản ghi nhưng vẫn tính là một trang
		{"làm tròn lên khi có trang dở", 12, 5, 3},
		{"chia hết không dư trang", 20, 5, 4},
		{"total 0 cho 0 trang", 0, 10, 0},
		{"một bản ghi một trang", 1, 10, 1},
		{"total đúng bằng limit", 10, 10, 1},
		{"total vượt limit một bản ghi", 11, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("totalPage(%d, %d): muốn %d, nhận %d", tt.total, tt.limit, tt.want, got)
			}
		})
	}
}

// Kịch bản cụ thể: 12 bản ghi, limit 5, xem trang 2.
// Cursor phải skip 5, giới hạn 5 và meta báo 3 trang.
func TestPagingScenario_Page2Limit5Total12(t *testing.T) {
	page, limit, skip := normalizePaging(2, 5)
	if page != 2 || limit != 5 || skip != 5 {
		t.Fatalf("Chuẩn hóa (2,5) phải giữ nguyên và skip 5, nhận page=%d limit=%d skip=%d", page, limit, skip)
	}
	if got := computeTotalPage(12, limit); got != 3 {
		t.Errorf("12 bản ghi với limit 5 phải ra 3 trang, nhận %d", got)
	}
}
