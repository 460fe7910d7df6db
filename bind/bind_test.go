package bind_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	inicfg "github.com/inicfg/go-inicfg"
	"github.com/inicfg/go-inicfg/bind"
)

func TestApply_Map(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nHost = example.org\nPort = 8080\nRatio = 0.75\nDebug = true\nTimeout = 1m30s\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	var (
		host    string
		port    int
		ratio   float64
		debug   bool
		timeout time.Duration
	)
	err = bind.Apply(sec, bind.Map{
		"Host":    bind.String(&host),
		"Port":    bind.Int(&port),
		"Ratio":   bind.Float(&ratio),
		"Debug":   bind.Bool(&debug),
		"Timeout": bind.Duration(&timeout),
	})
	require.NoError(t, err)
	require.Equal(t, "example.org", host)
	require.Equal(t, 8080, port)
	require.Equal(t, 0.75, ratio)
	require.True(t, debug)
	require.Equal(t, 90*time.Second, timeout)
}

func TestApply_CoercionFailure(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nPort = not-a-number\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	var port int
	err = bind.Apply(sec, bind.Map{"Port": bind.Int(&port)})
	require.Error(t, err)

	var ferr *bind.FieldError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, "Port", ferr.Setting)
}

func TestApply_UnknownSettings(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nHost = h\nExtra = ignored\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	var host string
	m := bind.Map{"Host": bind.String(&host)}

	t.Run("skipped by default", func(t *testing.T) {
		require.NoError(t, bind.Apply(sec, m))
		require.Equal(t, "h", host)
	})

	t.Run("strict mode fails", func(t *testing.T) {
		err := bind.Apply(sec, m, bind.Strict())
		require.ErrorIs(t, err, bind.ErrUnknownSetting)
		var ferr *bind.FieldError
		require.ErrorAs(t, err, &ferr)
		require.Equal(t, "Extra", ferr.Setting)
	})
}

func TestApply_CaseInsensitive(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nHOST = h\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	var host string
	m := bind.Map{"Host": bind.String(&host)}

	require.NoError(t, bind.Apply(sec, m))
	require.Empty(t, host, "exact matching must not fold case")

	require.NoError(t, bind.Apply(sec, m, bind.CaseInsensitive()))
	require.Equal(t, "h", host)
}

func TestApply_DecimalComma(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nRatio = 0,75\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	var ratio float64
	m := bind.Map{"Ratio": bind.Float(&ratio)}

	require.Error(t, bind.Apply(sec, m), "the default format does not accept a decimal comma")

	err = bind.Apply(sec, m, bind.WithFormat(bind.Format{DecimalSeparator: ','}))
	require.NoError(t, err)
	require.Equal(t, 0.75, ratio)
}

type recorder struct {
	got  [][2]string
	fail string
}

func (r *recorder) BindSetting(name, value string) error {
	if name == r.fail {
		return errors.New("boom")
	}
	r.got = append(r.got, [2]string{name, value})
	return nil
}

func TestApplyTo_Binder(t *testing.T) {
	cfg, err := inicfg.ParseString("[Server]\nb = 2\na = 1\n")
	require.NoError(t, err)
	sec, _ := cfg.Get("Server")

	t.Run("settings arrive in declaration order", func(t *testing.T) {
		r := &recorder{}
		require.NoError(t, bind.ApplyTo(sec, r))
		require.Equal(t, [][2]string{{"b", "2"}, {"a", "1"}}, r.got)
	})

	t.Run("binder errors are classified", func(t *testing.T) {
		r := &recorder{fail: "a"}
		err := bind.ApplyTo(sec, r)
		var ferr *bind.FieldError
		require.ErrorAs(t, err, &ferr)
		require.Equal(t, "a", ferr.Setting)
	})
}
