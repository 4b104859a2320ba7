package database

import (
	"reflect"
	"testing"

	"sales_dashboard/internal/api/transaction/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("Tag chứa order:-1 phải trả -1, nhận %d", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("Tag không có order phải mặc định 1, nhận %d", got)
	}
	if got := parseOrder("compound:group_a"); got != 1 {
		t.Errorf("Compound không có order phải mặc định 1, nhận %d", got)
	}
}

func TestParseIndexTag(t *testing.T) {
	configs := parseIndexTag("single,order:-1;compound:idx_region_date")
	if len(configs) != 2 {
		t.Fatalf("Tag hai phần phải cho 2 cấu hình, nhận %d", len(configs))
	}

	if _, ok := configs[0]["single"]; !ok {
		t.Error("Cấu hình đầu phải là single")
	}
	if configs[0]["order"] != "-1" {
		t.Errorf("Cấu hình đầu phải mang order -1, nhận %q", configs[0]["order"])
	}
	if configs[1]["compound"] != "idx_region_date" {
		t.Errorf("Cấu hình sau phải thuộc group idx_region_date, nhận %q", configs[1]["compound"])
	}
}

// buildCompoundGroups chạy đúng vòng đọc tag của CreateIndexes nhưng không chạm collection,
// dùng để chốt cấu hình index của model giao dịch.
func buildCompoundGroups(model interface{}) map[string]bson.D {
	modelType := reflect.TypeOf(model)
	groups := map[string]bson.D{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := field.Tag.Get("bson")
		for _, config := range parseIndexTag(tag) {
			if groupName, ok := config["compound"]; ok {
				groups[groupName] = append(groups[groupName], bson.E{Key: bsonField, Value: parseOrder(tag)})
			}
		}
	}
	return groups
}

func TestTransactionCompoundIndexes(t *testing.T) {
	groups := buildCompoundGroups(models.Transaction{})

	regionDate, ok := groups["idx_region_date"]
	if !ok {
		t.Fatal("Model phải khai báo compound index idx_region_date")
	}
	want := bson.D{{Key: "r", Value: 1}, {Key: "d", Value: -1}}
	if !reflect.DeepEqual(regionDate, want) {
		t.Errorf("idx_region_date phải là {r:1, d:-1}, nhận %v", regionDate)
	}

	categoryQuantity, ok := groups["idx_category_quantity"]
	if !ok {
		t.Fatal("Model phải khai báo compound index idx_category_quantity")
	}
	want = bson.D{{Key: "c", Value: 1}, {Key: "q", Value: -1}}
	if !reflect.DeepEqual(categoryQuantity, want) {
		t.Errorf("idx_category_quantity phải là {c:1, q:-1}, nhận %v", categoryQuantity)
	}
}
