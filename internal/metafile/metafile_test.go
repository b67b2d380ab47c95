package metafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-supertabular/pandoc"
)

// ---------------------------------------------------------------------------
// TestParse - YAML to document metadata
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("scalars map to the closest constructor", func(t *testing.T) {
		t.Parallel()

		meta, err := Parse([]byte("title: Report\ndraft: true\nyear: 2026\nblank:"))
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if len(meta) != 4 {
			t.Fatalf("got %d entries, want 4", len(meta))
		}

		if meta[0].Value != pandoc.MetaString("Report") {
			t.Errorf("title = %#v, want MetaString Report", meta[0].Value)
		}
		if meta[1].Value != pandoc.MetaBool(true) {
			t.Errorf("draft = %#v, want MetaBool true", meta[1].Value)
		}
		if meta[2].Value != pandoc.MetaString("2026") {
			t.Errorf("year = %#v, want MetaString 2026", meta[2].Value)
		}
		if meta[3].Value != pandoc.MetaString("") {
			t.Errorf("blank = %#v, want empty MetaString", meta[3].Value)
		}
	})

	t.Run("keys keep source order", func(t *testing.T) {
		t.Parallel()

		meta, err := Parse([]byte("zebra: 1\nalpha: 2\nmiddle: 3"))
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		wantKeys := []string{"zebra", "alpha", "middle"}
		for i, want := range wantKeys {
			if meta[i].Key != want {
				t.Errorf("key[%d] = %q, want %q", i, meta[i].Key, want)
			}
		}
	})

	t.Run("nested mappings and lists", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
author:
  name: Ada
  email: ada@example.com
keywords:
  - tables
  - latex
`)
		meta, err := Parse(data)
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}

		author, ok := meta[0].Value.(*pandoc.MetaMap)
		if !ok {
			t.Fatalf("author = %T, want *pandoc.MetaMap", meta[0].Value)
		}
		if author.Entries[0].Key != "name" || author.Entries[0].Value != pandoc.MetaString("Ada") {
			t.Errorf("author.name = %q/%#v", author.Entries[0].Key, author.Entries[0].Value)
		}

		keywords, ok := meta[1].Value.(*pandoc.MetaList)
		if !ok {
			t.Fatalf("keywords = %T, want *pandoc.MetaList", meta[1].Value)
		}
		if len(keywords.Entries) != 2 || keywords.Entries[1] != pandoc.MetaString("latex") {
			t.Errorf("keywords = %#v", keywords.Entries)
		}
	})

	t.Run("empty input yields empty metadata", func(t *testing.T) {
		t.Parallel()

		for _, data := range [][]byte{nil, {}, []byte("   \n\t\n")} {
			meta, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", data, err)
			}
			if len(meta) != 0 {
				t.Errorf("Parse(%q) = %d entries, want 0", data, len(meta))
			}
		}
	})

	t.Run("non-mapping top level is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("- just\n- a\n- list"))
		if !errors.Is(err, ErrNotMapping) {
			t.Errorf("errors.Is(err, ErrNotMapping) = false, got: %v", err)
		}
	})

	t.Run("invalid YAML is reported", func(t *testing.T) {
		t.Parallel()

		if _, err := Parse([]byte("key: [unclosed")); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoad - Reading metadata files from disk
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads and parses a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "meta.yaml")
		if err := os.WriteFile(path, []byte("lang: en\nsupertabular-layout: plain"), 0o644); err != nil {
			t.Fatal(err)
		}

		meta, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		value, ok := meta.Get("supertabular-layout")
		if !ok || value != pandoc.MetaString("plain") {
			t.Errorf("supertabular-layout = %#v, ok = %v", value, ok)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrReadFile) {
			t.Errorf("errors.Is(err, ErrReadFile) = false, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMerge - Document values win over file values
// ---------------------------------------------------------------------------

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("document keys keep their value and position", func(t *testing.T) {
		t.Parallel()

		doc := pandoc.Meta{
			{Key: "title", Value: pandoc.MetaString("From Document")},
			{Key: "lang", Value: pandoc.MetaString("en")},
		}
		defaults := pandoc.Meta{
			{Key: "title", Value: pandoc.MetaString("From File")},
			{Key: "supertabular-layout", Value: pandoc.MetaString("plain")},
		}

		out := Merge(doc, defaults)
		if len(out) != 3 {
			t.Fatalf("got %d entries, want 3", len(out))
		}
		if out[0].Key != "title" || out[0].Value != pandoc.MetaString("From Document") {
			t.Errorf("out[0] = %q/%#v, want the document title", out[0].Key, out[0].Value)
		}
		if out[2].Key != "supertabular-layout" {
			t.Errorf("out[2].Key = %q, want the appended default", out[2].Key)
		}
	})

	t.Run("empty defaults return the document untouched", func(t *testing.T) {
		t.Parallel()

		doc := pandoc.Meta{{Key: "title", Value: pandoc.MetaString("x")}}
		if out := Merge(doc, nil); len(out) != 1 {
			t.Errorf("got %d entries, want 1", len(out))
		}
	})

	t.Run("empty document takes all defaults", func(t *testing.T) {
		t.Parallel()

		defaults := pandoc.Meta{
			{Key: "a", Value: pandoc.MetaString("1")},
			{Key: "b", Value: pandoc.MetaString("2")},
		}
		out := Merge(nil, defaults)
		if len(out) != 2 || out[0].Key != "a" || out[1].Key != "b" {
			t.Errorf("out = %#v, want both defaults in order", out)
		}
	})
}
