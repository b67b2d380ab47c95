package supertabular

import "github.com/alnah/go-supertabular/pandoc"

// preambleDeclarations are the package lines every transformed document
// needs in its LaTeX preamble, in load order: supertabular draws the
// environment, array provides the column modifiers, calc computes the fixed
// column widths.
var preambleDeclarations = []string{
	`\usepackage{supertabular}`,
	`\usepackage{array}`,
	`\usepackage{calc}`,
}

// AugmentMeta returns metadata with the supertabular package declarations
// appended to the header-includes list. Existing keys keep their values and
// order; a scalar header-includes value becomes the first list entry. The
// input mapping is not modified.
func (s *Service) AugmentMeta(meta pandoc.Meta) pandoc.Meta {
	s.cfg.tracer.Tracef("adding %d preamble declarations to %s", len(preambleDeclarations), MetaHeaderIncludes)
	return augmentMeta(meta)
}

func augmentMeta(meta pandoc.Meta) pandoc.Meta {
	out := make(pandoc.Meta, len(meta), len(meta)+1)
	copy(out, meta)

	var entries []pandoc.MetaValue
	if existing, ok := out.Get(MetaHeaderIncludes); ok {
		if list, isList := existing.(*pandoc.MetaList); isList {
			entries = append(entries, list.Entries...)
		} else {
			entries = append(entries, existing)
		}
	}
	for _, line := range preambleDeclarations {
		entries = append(entries, &pandoc.MetaBlocks{Blocks: []pandoc.Block{
			&pandoc.RawBlock{Format: FormatLaTeX, Text: line},
		}})
	}

	out.Set(MetaHeaderIncludes, &pandoc.MetaList{Entries: entries})
	return out
}
