package inicfg_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	inicfg "github.com/inicfg/go-inicfg"
)

func TestLoadSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")

	cfg, err := inicfg.ParseString("[Server]\nHost = example.org\n")
	require.NoError(t, err)
	require.NoError(t, inicfg.SaveFile(path, cfg))

	got, err := inicfg.LoadFile(path)
	require.NoError(t, err)
	requireSameModel(t, cfg, got)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := inicfg.LoadFile(filepath.Join(t.TempDir(), "absent.ini"))
	require.Error(t, err)
}

func TestLoad_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[S]\na = 1\n")...)

	cfg, err := inicfg.Load(bytes.NewReader(data))
	require.NoError(t, err)
	s, ok := cfg.Get("S")
	require.True(t, ok, "the BOM must not leak into the first section name")
	a, _ := s.Get("a")
	require.Equal(t, "1", a.Value())
}

func TestLoadSave_UTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	path := filepath.Join(t.TempDir(), "utf16.ini")

	cfg, err := inicfg.ParseString("[S]\nname = værdi\n")
	require.NoError(t, err)
	require.NoError(t, inicfg.SaveFile(path, cfg, inicfg.Encoding(enc)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFE}, raw[:2], "expected a UTF-16LE BOM")

	t.Run("explicit encoding", func(t *testing.T) {
		got, err := inicfg.LoadFile(path, inicfg.Encoding(enc))
		require.NoError(t, err)
		requireSameModel(t, cfg, got)
	})

	t.Run("BOM auto-detection", func(t *testing.T) {
		got, err := inicfg.LoadFile(path)
		require.NoError(t, err)
		requireSameModel(t, cfg, got)
	})
}
