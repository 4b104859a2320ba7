package transactionsvc

import (
	"testing"

	"sales_dashboard/internal/global"
)

func init() {
	global.InitValidator()
}

func TestResolveSort(t *testing.T) {
	tests := []struct {
		name          string
		sortBy        string
		order         string
		wantField     string
		wantDirection int
	}{
		{"mặc định khi không gửi", "", "", "d", -1},
		{"date desc", "date", "desc", "d", -1},
		{"date asc", "date", "asc", "d", 1},
		{"quantity sang key q", "quantity", "desc", "q", -1},
		{"name sang key n", "name", "asc", "n", 1},
		{"amount sang key ta", "amount", "desc", "ta", -1},
		// sortBy lạ rơi về date, không trả lỗi
		{"sortBy không hợp lệ về date", "createdAt", "asc", "d", 1},
		{"sortBy là key vật lý không được nhận", "d", "desc", "d", -1},
		// order lạ rơi về desc
		{"order không hợp lệ về desc", "quantity", "ascending", "q", -1},
		{"cả hai không hợp lệ về mặc định", "price", "xyz", "d", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, direction := resolveSort(tt.sortBy, tt.order)
			if field != tt.wantField {
				t.Errorf("sortBy=%q phải cho key %q, nhận %q", tt.sortBy, tt.wantField, field)
			}
			if direction != tt.wantDirection {
				t.Errorf("order=%q phải cho chiều %d, nhận %d", tt.order, tt.wantDirection, direction)
			}
		})
	}
}
