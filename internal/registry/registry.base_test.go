// Package registry - Test các thao tác cơ bản của Registry.
package registry

import (
	"fmt"
	"sort"
	"testing"
)

func TestRegister_VaGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register trả về lỗi: %v", err)
	}
	if !isNew {
		t.Error("item đầu tiên phải là mới")
	}

	item, exists := r.Get("a")
	if !exists || item != 1 {
		t.Errorf("Get('a') phải trả về 1, nhận được %d (exists=%v)", item, exists)
	}

	// Ghi đè item cũ
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register ghi đè trả về lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ thì isNew phải là false")
	}
}

func TestRegister_TenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("name rỗng phải bị từ chối")
	}
}

func TestNames(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("creative", "c")
	r.Register("experiment", "e")
	r.Register("feedback", "f")

	names := r.Names()
	sort.Strings(names)
	want := []string{"creative", "experiment", "feedback"}
	if len(names) != len(want) {
		t.Fatalf("Names trả về %v, mong đợi %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names trả về %v, mong đợi %v", names, want)
			break
		}
	}
}

func TestClearAll(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "x")
	r.Register("b", "y")

	cleaned := 0
	count, err := r.ClearAll(func(item string) error {
		cleaned++
		return nil
	})
	if err != nil {
		t.Fatalf("ClearAll trả về lỗi: %v", err)
	}
	if count != 2 || cleaned != 2 {
		t.Errorf("ClearAll phải dọn 2 items, count=%d cleaned=%d", count, cleaned)
	}
	if len(r.Names()) != 0 {
		t.Errorf("registry phải rỗng sau ClearAll, còn %v", r.Names())
	}
}

func TestClearAll_CleanupLoi(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "x")

	_, err := r.ClearAll(func(item string) error {
		return fmt.Errorf("không đóng được %s", item)
	})
	if err == nil {
		t.Error("cleanup lỗi thì ClearAll phải trả về lỗi")
	}
}
