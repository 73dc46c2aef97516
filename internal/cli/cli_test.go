package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/ui"
	"github.com/rileyhilliard/workmon/internal/watch"
	"github.com/rileyhilliard/workmon/internal/workarea"
)

type stubFetcher struct {
	table workarea.Table
	err   error
}

func (f stubFetcher) Fetch(context.Context) (workarea.Table, error) {
	return f.table, f.err
}

func noColors(t *testing.T) {
	t.Helper()
	orig := lipgloss.ColorProfile()
	ui.DisableColors()
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })
}

func TestApplyAnswers(t *testing.T) {
	db := config.DefaultConfig().Database

	err := applyAnswers(&db, credentialAnswers{
		User:     " analyst\x00",
		Password: "",
		Name:     "   ",
		Host:     "warehouse.internal ",
		Port:     "5432",
	})

	require.NoError(t, err)
	assert.Equal(t, "analyst", db.User)
	assert.Equal(t, config.DefaultPassword, db.Password, "blank keeps the current value")
	assert.Equal(t, config.DefaultDatabase, db.Name)
	assert.Equal(t, "warehouse.internal", db.Host)
	assert.Equal(t, 5432, db.Port)
}

func TestApplyAnswers_AllBlankKeepsConfig(t *testing.T) {
	db := config.DefaultConfig().Database
	want := db

	require.NoError(t, applyAnswers(&db, credentialAnswers{}))
	assert.Equal(t, want, db)
}

func TestApplyAnswers_BadPort(t *testing.T) {
	db := config.DefaultConfig().Database

	err := applyAnswers(&db, credentialAnswers{Port: "postgres"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Equal(t, config.DefaultPort, db.Port)
}

func TestValidatePortInput(t *testing.T) {
	assert.NoError(t, validatePortInput(""))
	assert.NoError(t, validatePortInput("15432"))
	assert.Error(t, validatePortInput("abc"))
	assert.Error(t, validatePortInput("0"))
	assert.Error(t, validatePortInput("65536"))
}

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, config.DefaultConfig()))

	out := buf.String()
	assert.NotContains(t, out, config.DefaultPassword)
	assert.Contains(t, out, "interval: 10s")

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	db, ok := got["database"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "localhost", db["host"])
	assert.Equal(t, 15432, db["port"])
	assert.Equal(t, "********", db["password"])
}

func TestPrintOnce_Data(t *testing.T) {
	noColors(t)
	table := workarea.NewTable([]workarea.Row{
		{User: "alice", PID: 1, SessionID: "s1", Timestamp: time.Now(), WorkAreaMB: 600},
		{User: "bob", PID: 2, SessionID: "s2", Timestamp: time.Now(), WorkAreaMB: 400},
	})
	p := watch.NewPoller(stubFetcher{table: table}, watch.Options{Threshold: 0.05})
	var buf bytes.Buffer

	require.NoError(t, printOnce(context.Background(), p, &buf, 140))

	out := buf.String()
	assert.Contains(t, out, "Work Area (MB)")
	assert.Contains(t, out, "***")
	assert.Contains(t, out, "Work Area - Total: 1000.00 MB, Users: 2")
	assert.Contains(t, out, "60.0% (600.0 MB)")
}

func TestPrintOnce_Empty(t *testing.T) {
	p := watch.NewPoller(stubFetcher{}, watch.Options{})
	var buf bytes.Buffer

	require.NoError(t, printOnce(context.Background(), p, &buf, 140))
	assert.Equal(t, NoSessions+"\n", buf.String())
}

func TestPrintOnce_FailuresExitOne(t *testing.T) {
	fatal := errors.WrapWithCode(&pq.Error{Code: "28P01", Message: "password authentication failed"},
		errors.ErrConnect, "Cannot connect", "")
	tests := []struct {
		name string
		err  error
	}{
		{"fatal", fatal},
		{"recoverable", stderrors.New("relation does not exist")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := watch.NewPoller(stubFetcher{err: tt.err}, watch.Options{})
			var buf bytes.Buffer

			err := printOnce(context.Background(), p, &buf, 140)

			code, ok := errors.GetExitCode(err)
			require.True(t, ok)
			assert.Equal(t, 1, code)
			assert.Contains(t, buf.String(), watch.ErrorPrefix)
		})
	}
}

// chartlessWriter refuses the chart block and keeps everything else.
type chartlessWriter struct {
	bytes.Buffer
}

func (w *chartlessWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("== SAS Work")) {
		return 0, stderrors.New("terminal gone")
	}
	return w.Buffer.Write(p)
}

func TestPrintOnce_DrawFailureExitsOne(t *testing.T) {
	table := workarea.NewTable([]workarea.Row{{User: "alice", SessionID: "s1", WorkAreaMB: 10}})
	p := watch.NewPoller(stubFetcher{table: table}, watch.Options{Threshold: 0.05})
	var w chartlessWriter

	err := printOnce(context.Background(), p, &w, 140)

	code, ok := errors.GetExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
	assert.Contains(t, w.String(), "***")
	assert.Contains(t, w.String(), watch.ErrorPrefix+"Chart draw failed: draw chart: terminal gone")
}

func TestExitOnFatal(t *testing.T) {
	assert.NoError(t, exitOnFatal(nil))

	code, ok := errors.GetExitCode(exitOnFatal(errors.New(errors.ErrConnect, "down", "")))
	assert.True(t, ok)
	assert.Equal(t, 1, code)

	other := errors.New(errors.ErrRender, "tui", "")
	assert.Equal(t, other, exitOnFatal(other))
}

func TestBindFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := &cobra.Command{Use: "workmon"}
	pf := cmd.PersistentFlags()
	pf.String("host", config.DefaultHost, "")
	pf.Int("port", config.DefaultPort, "")
	pf.String("dbname", config.DefaultDatabase, "")
	pf.String("user", config.DefaultUser, "")
	pf.String("sslmode", config.DefaultSSLMode, "")
	pf.Duration("interval", config.DefaultInterval, "")

	fv := config.NewViper()
	bindFlags(fv, cmd)
	require.NoError(t, pf.Parse([]string{"--host", "db.internal", "--port", "6543", "--interval", "30s"}))

	cfg, err := config.Load(fv, "")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 30*time.Second, cfg.Interval)
	assert.Equal(t, config.DefaultUser, cfg.Database.User)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"watch", "once", "config", "version", "completion"} {
		assert.True(t, names[want], "missing %s", want)
	}

	for _, flag := range []string{"host", "port", "dbname", "user", "sslmode", "interval", "config", "no-prompt", "no-color", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
	assert.NotNil(t, watchCmd.Flags().Lookup("headless"))
}
