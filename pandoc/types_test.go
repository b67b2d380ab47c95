package pandoc_test

import (
	"testing"

	"github.com/alnah/go-supertabular/pandoc"
)

// ---------------------------------------------------------------------------
// TestMetaGetSet - Ordered metadata lookups and updates
// ---------------------------------------------------------------------------

func TestMetaGetSet(t *testing.T) {
	t.Parallel()

	t.Run("get returns stored value", func(t *testing.T) {
		t.Parallel()

		meta := pandoc.Meta{{Key: "lang", Value: pandoc.MetaString("en")}}
		value, ok := meta.Get("lang")
		if !ok {
			t.Fatal("Get(lang) not found")
		}
		if value != pandoc.MetaString("en") {
			t.Errorf("value = %v, want en", value)
		}
	})

	t.Run("get on absent key", func(t *testing.T) {
		t.Parallel()

		var meta pandoc.Meta
		if _, ok := meta.Get("missing"); ok {
			t.Error("Get(missing) = found, want not found")
		}
	})

	t.Run("set keeps position of existing key", func(t *testing.T) {
		t.Parallel()

		meta := pandoc.Meta{
			{Key: "first", Value: pandoc.MetaString("1")},
			{Key: "second", Value: pandoc.MetaString("2")},
			{Key: "third", Value: pandoc.MetaString("3")},
		}
		meta.Set("second", pandoc.MetaString("two"))
		if meta[1].Key != "second" {
			t.Errorf("meta[1].Key = %q, want %q", meta[1].Key, "second")
		}
		if meta[1].Value != pandoc.MetaString("two") {
			t.Errorf("meta[1].Value = %v, want two", meta[1].Value)
		}
		if len(meta) != 3 {
			t.Errorf("len = %d, want 3", len(meta))
		}
	})

	t.Run("set appends new key at the end", func(t *testing.T) {
		t.Parallel()

		meta := pandoc.Meta{{Key: "a", Value: pandoc.MetaString("1")}}
		meta.Set("b", pandoc.MetaBool(true))
		if len(meta) != 2 || meta[1].Key != "b" {
			t.Fatalf("meta = %v, want b appended", meta)
		}
	})

	t.Run("set nil removes the key", func(t *testing.T) {
		t.Parallel()

		meta := pandoc.Meta{
			{Key: "keep", Value: pandoc.MetaString("1")},
			{Key: "drop", Value: pandoc.MetaString("2")},
		}
		meta.Set("drop", nil)
		if len(meta) != 1 || meta[0].Key != "keep" {
			t.Errorf("meta = %v, want only keep", meta)
		}
	})
}
