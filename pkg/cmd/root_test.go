package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlstyle/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlstyle/pkg/config"
	"github.com/pseudomuto/sqlstyle/pkg/consts"
	"github.com/pseudomuto/sqlstyle/pkg/style"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runRoot(t *testing.T, dir string, args ...string) (*Settings, error) {
	t.Helper()

	p := Params{
		Commands: []*cli.Command{{
			Name:   "probe",
			Action: func(context.Context, *cli.Command) error { return nil },
		}},
		Version:  &Version{Version: "test"},
		Loader:   &config.Loader{DefaultPath: filepath.Join(dir, consts.DefaultConfigFile)},
		Settings: &Settings{},
	}

	err := newApp(p).Run(context.Background(), append(append([]string{"sqlstyle"}, args...), "probe"))
	return p.Settings, err
}

func TestRoot_Defaults(t *testing.T) {
	s, err := runRoot(t, t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), s.Config)
}

func TestRoot_DefaultConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{consts.DefaultConfigFile: "case: lower\nindentSize: 2\n"})

	s, err := runRoot(t, dir)
	require.NoError(t, err)
	require.Equal(t, style.Lower, s.Config.Style.Case)
	require.Equal(t, 2, s.Config.Style.IndentSize)
}

func TestRoot_ConfigFlagAndEnv(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"team.yaml": "dialect: mysql\n",
		"env.yaml":  "dialect: clickhouse\n",
	})

	s, err := runRoot(t, dir, "--config", filepath.Join(dir, "team.yaml"))
	require.NoError(t, err)
	require.Equal(t, "mysql", s.Config.Style.Dialect)

	t.Setenv("SQLSTYLE_CONFIG", filepath.Join(dir, "env.yaml"))
	s, err = runRoot(t, dir)
	require.NoError(t, err)
	require.Equal(t, "clickhouse", s.Config.Style.Dialect)

	_, err = runRoot(t, dir, "-c", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}

func TestRoot_Overrides(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{consts.DefaultConfigFile: "dialect: mysql\ncase: upper\n"})

	s, err := runRoot(t, dir, "--dialect", "postgres", "--case", "capitalize")
	require.NoError(t, err)
	require.Equal(t, "postgres", s.Config.Style.Dialect)
	require.Equal(t, style.Capitalize, s.Config.Style.Case)
}

func TestRoot_InvalidFlags(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"dialect":   {[]string{"--dialect", "cobol"}, "unknown dialect"},
		"case":      {[]string{"--case", "shouty"}, "invalid --case"},
		"log level": {[]string{"--log-level", "loud"}, "invalid log level"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runRoot(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
