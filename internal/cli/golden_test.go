package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// To regenerate golden files, run:
//
//	go test ./internal/cli -update
func TestGoldenOutput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "distinct_folded",
			args: []string{"distinct", "--ignore-case", "--normalize", "testdata/input/names.txt"},
		},
		{
			name: "group_consecutive",
			args: []string{"group", "--by", "consecutive", "testdata/input/numbers.txt"},
		},
		{
			name: "group_json",
			args: []string{"--format", "json", "group", "testdata/input/runs.txt"},
		},
		{
			name: "join_pairs_yaml",
			args: []string{"join-pairs", "testdata/input/settings.yaml"},
		},
		{
			name: "join_pairs_cue",
			args: []string{"join-pairs", "--kv-delimiter", ": ", "-d", "; ", "testdata/input/settings.cue"},
		},
		{
			name: "join_names",
			args: []string{"join", "-d", " | ", "testdata/input/names.txt"},
		},
		{
			name:    "pick_empty_json",
			args:    []string{"--format", "json", "pick", "-"},
			wantErr: true,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			g.Assert(t, tt.name, []byte(out))
		})
	}
}
