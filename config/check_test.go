package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostpackets/pycard/config"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pycard.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLogBuffer() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

func TestLoad_MissingMandatoryOption(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeConf(t, "[dav]\nresource = https://dav.example.com/\n")

	logger, buf := newLogBuffer()
	p := config.NewParser()
	p.Logger = logger
	p.Mandatory = []config.Key{{Section: config.SectionDAV, Option: "user"}}

	_, err := p.Load(path, nil)
	require.ErrorIs(t, err, config.ErrMandatoryOption)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "level=ERROR"))
	assert.Contains(t, out, "[dav]user")
}

func TestLoad_LeftoverKeysNonFatal(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeConf(t, `
[dav]
user = alice

[extra]
foo = bar
`)

	logger, buf := newLogBuffer()
	p := config.NewParser()
	p.Logger = logger

	s, err := p.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.DAVUser)

	out := buf.String()
	assert.Contains(t, out, "[extra]foo")
	assert.NotContains(t, out, "level=ERROR")
}

func TestCheck(t *testing.T) {
	logger, buf := newLogBuffer()
	p := config.NewParser()
	p.Logger = logger
	p.Mandatory = []config.Key{{Section: config.SectionDAV, Option: "resource"}}

	s := &config.Settings{}
	assert.False(t, p.Check(s, []config.Key{{Section: "extra", Option: "foo"}}))
	assert.Contains(t, buf.String(), "[extra]foo")

	s.DAVResource = "https://dav.example.com/"
	assert.True(t, p.Check(s, nil))
}

func TestCheck_FalsyValues(t *testing.T) {
	logger, _ := newLogBuffer()
	p := config.NewParser()
	p.Logger = logger

	// A resolved false counts as missing, same as an empty string.
	p.Mandatory = []config.Key{{Section: config.DefaultSection, Option: "write_support"}}
	assert.False(t, p.Check(&config.Settings{}, nil))
	assert.True(t, p.Check(&config.Settings{WriteSupport: true}, nil))
}
