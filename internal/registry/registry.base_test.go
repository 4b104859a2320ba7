package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry[string]()

	isNew, err := reg.Register("alpha", "first")
	if err != nil {
		t.Fatalf("Register trả lỗi không mong đợi: %v", err)
	}
	if !isNew {
		t.Error("Đăng ký lần đầu phải trả isNew = true")
	}

	isNew, err = reg.Register("alpha", "second")
	if err != nil {
		t.Fatalf("Ghi đè trả lỗi không mong đợi: %v", err)
	}
	if isNew {
		t.Error("Ghi đè item đã tồn tại phải trả isNew = false")
	}

	value, exists := reg.Get("alpha")
	if !exists {
		t.Fatal("Item đã đăng ký phải tồn tại")
	}
	if value != "second" {
		t.Errorf("Ghi đè phải giữ giá trị mới nhất, nhận %q", value)
	}

	if _, exists := reg.Get("missing"); exists {
		t.Error("Key chưa đăng ký không được tồn tại")
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	reg := NewRegistry[int]()
	if _, err := reg.Register("", 1); err == nil {
		t.Error("Đăng ký với name rỗng phải trả lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	reg := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	value, err := reg.GetOrCreate("counter", creator)
	if err != nil {
		t.Fatalf("GetOrCreate trả lỗi không mong đợi: %v", err)
	}
	if value != 42 {
		t.Errorf("Giá trị mới tạo phải là 42, nhận %d", value)
	}

	// Lần gọi thứ hai phải trả instance đã có, không gọi lại creator
	if _, err := reg.GetOrCreate("counter", creator); err != nil {
		t.Fatalf("GetOrCreate lần hai trả lỗi: %v", err)
	}
	if calls != 1 {
		t.Errorf("Creator chỉ được gọi đúng một lần, đã gọi %d lần", calls)
	}
}

func TestRegistry_GetOrCreateError(t *testing.T) {
	reg := NewRegistry[int]()
	wantErr := errors.New("create failed")

	if _, err := reg.GetOrCreate("bad", func() (int, error) { return 0, wantErr }); err == nil {
		t.Fatal("Creator thất bại thì GetOrCreate phải trả lỗi")
	}
	if _, exists := reg.Get("bad"); exists {
		t.Error("Item không được đăng ký khi creator thất bại")
	}
}

func TestRegistry_ClearAll(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Register("a", "1")
	reg.Register("b", "2")

	cleaned := 0
	count, err := reg.ClearAll(func(item string) error {
		cleaned++
		return nil
	})
	if err != nil {
		t.Fatalf("ClearAll trả lỗi không mong đợi: %v", err)
	}
	if count != 2 || cleaned != 2 {
		t.Errorf("ClearAll phải xóa và cleanup đủ 2 items, count=%d cleaned=%d", count, cleaned)
	}

	if _, exists := reg.Get("a"); exists {
		t.Error("Registry phải rỗng sau ClearAll")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			reg.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			reg.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := reg.Get("shared"); !exists {
		t.Error("Item phải tồn tại sau các lượt ghi song song")
	}
}
