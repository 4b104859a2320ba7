package transactionhdl

import "testing"

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		pageRaw   string
		limitRaw  string
		wantPage  int64
		wantLimit int64
	}{
		{"giá trị hợp lệ giữ nguyên", "2", "25", 2, 25},
		{"mặc định từ middleware query", "1", "10", 1, 10},
		{"page không phải số về 1", "abc", "10", 1, 10},
		{"page 0 về 1", "0", "10", 1, 10},
		{"page âm về 1", "-5", "10", 1, 10},
		{"limit không phải số về mặc định", "1", "xyz", 1, 10},
		{"limit 0 về mặc định", "1", "0", 1, 10},
		{"limit âm về mặc định", "1", "-20", 1, 10},
		// Limit hợp lệ vượt trần bị kẹp xuống trần, không bị reset về mặc định
		{"limit vượt trần kẹp xuống trần", "1", "200", 1, 100},
		{"limit đúng bằng trần giữ nguyên", "1", "100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := parsePagination(tt.pageRaw, tt.limitRaw)
			if page != tt.wantPage {
				t.Errorf("page=%q phải cho %d, nhận %d", tt.pageRaw, tt.wantPage, page)
			}
			if limit != tt.wantLimit {
				t.Errorf("limit=%q phải cho %d, nhận %d", tt.limitRaw, tt.wantLimit, limit)
			}
		})
	}
}
