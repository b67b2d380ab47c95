package main

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFilterFlags - Flag parsing and positional arguments
// ---------------------------------------------------------------------------

func TestParseFilterFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     filterFlags
		wantPos  []string
		wantErr  bool
	}{
		{
			name:    "no arguments",
			args:    nil,
			want:    filterFlags{},
			wantPos: []string{},
		},
		{
			name:    "format only, the pandoc invocation",
			args:    []string{"latex"},
			want:    filterFlags{},
			wantPos: []string{"latex"},
		},
		{
			name: "all flags long form",
			args: []string{
				"latex",
				"--layout", "plain",
				"--config", "filter",
				"--metadata-file", "defaults.yaml",
				"--no-preamble",
				"--verbose",
			},
			want: filterFlags{
				layout:       "plain",
				config:       "filter",
				metadataFile: "defaults.yaml",
				noPreamble:   true,
				verbose:      true,
			},
			wantPos: []string{"latex"},
		},
		{
			name: "short flags",
			args: []string{"-l", "width", "-c", "filter", "-m", "d.yaml", "-v", "beamer"},
			want: filterFlags{
				layout:       "width",
				config:       "filter",
				metadataFile: "d.yaml",
				verbose:      true,
			},
			wantPos: []string{"beamer"},
		},
		{
			name:    "version flag",
			args:    []string{"--version"},
			want:    filterFlags{version: true},
			wantPos: []string{},
		},
		{
			name:    "unknown flag",
			args:    []string{"--workers", "4"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, pos, err := parseFilterFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFilterFlags() accepted invalid arguments")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFilterFlags() error = %v", err)
			}
			if *flags != tt.want {
				t.Errorf("flags = %+v, want %+v", *flags, tt.want)
			}
			if !reflect.DeepEqual(pos, tt.wantPos) {
				t.Errorf("positional = %v, want %v", pos, tt.wantPos)
			}
		})
	}
}
