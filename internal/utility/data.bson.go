package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành bản đồ theo bson tag.
// Nó nhận interface làm tham số và trả về bản đồ và lỗi nếu có.
// Dùng khi cần insert document từ struct mà vẫn giữ tên field vật lý.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}

// ToStringSlice chuyển kết quả distinct (slice interface{}) về slice string,
// bỏ qua các giá trị không phải string hoặc chuỗi rỗng.
func ToStringSlice(values []interface{}) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		result = append(result, s)
	}
	return result
}
