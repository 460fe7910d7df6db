package inicfg

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden parses every testdata/*.ini file and compares the canonical
// serialization (or, for invalid inputs, the error text) against the
// matching .golden file. Run with -update to regenerate.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.ini")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			cfg, err := Parse(src)
			if err != nil {
				actual = []byte(err.Error())
			} else {
				actual, err = Serialize(cfg)
				require.NoError(t, err)
			}

			goldenFile := strings.Replace(file, ".ini", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual))
		})
	}
}
