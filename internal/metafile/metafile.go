// Package metafile loads YAML metadata files and converts them into
// document metadata, the way pandoc's --metadata-file option does: values
// already present in the document win, file values fill the gaps.
package metafile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-supertabular/internal/yamlutil"
	"github.com/alnah/go-supertabular/pandoc"
)

// Sentinel errors for metadata file operations.
var (
	ErrReadFile   = errors.New("metafile: failed to read metadata file")
	ErrNotMapping = errors.New("metafile: top level must be a mapping")
)

// Load reads the file at path and parses it into document metadata.
func Load(path string) (pandoc.Meta, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	return Parse(data)
}

// Parse converts YAML bytes into document metadata. Mapping keys keep their
// source order. An empty or null document yields empty metadata.
func Parse(data []byte) (pandoc.Meta, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return pandoc.Meta{}, nil
	}

	var root any
	if err := yamlutil.UnmarshalOrdered(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return pandoc.Meta{}, nil
	}
	mapping, ok := root.(yamlutil.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, root)
	}
	return metaFromMapping(mapping), nil
}

// Merge overlays defaults beneath doc: keys the document already has keep
// their document value and position, missing keys are appended in the
// defaults' order.
func Merge(doc, defaults pandoc.Meta) pandoc.Meta {
	if len(defaults) == 0 {
		return doc
	}
	out := make(pandoc.Meta, len(doc), len(doc)+len(defaults))
	copy(out, doc)
	for _, entry := range defaults {
		if _, ok := out.Get(entry.Key); ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func metaFromMapping(mapping yamlutil.MapSlice) pandoc.Meta {
	meta := make(pandoc.Meta, 0, len(mapping))
	for _, item := range mapping {
		meta = append(meta, pandoc.MetaEntry{
			Key:   fmt.Sprint(item.Key),
			Value: metaValue(item.Value),
		})
	}
	return meta
}

// metaValue maps one YAML value onto the closest metadata constructor.
// Numbers and other scalars become strings, which is how pandoc treats
// them in metadata too.
func metaValue(v any) pandoc.MetaValue {
	switch val := v.(type) {
	case nil:
		return pandoc.MetaString("")
	case bool:
		return pandoc.MetaBool(val)
	case string:
		return pandoc.MetaString(val)
	case yamlutil.MapSlice:
		return &pandoc.MetaMap{Entries: metaFromMapping(val)}
	case []any:
		entries := make([]pandoc.MetaValue, 0, len(val))
		for _, item := range val {
			entries = append(entries, metaValue(item))
		}
		return &pandoc.MetaList{Entries: entries}
	default:
		return pandoc.MetaString(fmt.Sprint(val))
	}
}
