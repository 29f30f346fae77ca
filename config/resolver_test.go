package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func writeTempConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pycard.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeTempConf(t, `
[dav]
user = alice
passwd = hunter2
resource = https://dav.example.com/abook/
auth = digest
verify = False

[sqlite]
path = /var/lib/pycard/abook.db

[default]
debug = True
write_support = YesPleaseIDoHaveABackupOfMyData
`)

	s, err := NewParser().Load(path, nil)
	require.NoError(t, err)

	want := &Settings{
		DAVUser:      "alice",
		DAVPasswd:    "hunter2",
		DAVResource:  "https://dav.example.com/abook/",
		DAVAuth:      AuthDigest,
		DAVVerify:    Verify{},
		DBPath:       "/var/lib/pycard/abook.db",
		Debug:        true,
		WriteSupport: true,
	}
	assert.Equal(t, want, s)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeTempConf(t, "")

	s, err := NewParser().Load(path, nil)
	require.NoError(t, err)

	// Every schema key resolves even when the file is empty; filtered
	// entries get their filter applied to the raw default.
	want := &Settings{
		DAVAuth:   AuthBasic,
		DAVVerify: Verify{Enabled: true},
		DBPath:    "/home/alice/.pycard/abook.db",
	}
	assert.Equal(t, want, s)
}

func TestLoad_FlagsWinOverFile(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeTempConf(t, `
[dav]
user = fileuser

[default]
debug = False
`)

	p := NewParser()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p.RegisterFlags(fs)
	fs.String("user", "", "dav user override")
	p.FlagKeys["user"] = Key{SectionDAV, "user"}
	require.NoError(t, fs.Parse([]string{"--user", "cliuser", "--debug"}))

	s, err := p.Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "cliuser", s.DAVUser)
	assert.True(t, s.Debug)
}

func TestLoad_UntouchedFlagDoesNotShadowFile(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeTempConf(t, "[default]\ndebug = True\n")

	p := NewParser()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p.RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	s, err := p.Load(path, fs)
	require.NoError(t, err)
	assert.True(t, s.Debug)
}

func TestLoad_InvalidAuthFails(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	path := writeTempConf(t, "[dav]\nauth = token\n")

	_, err := NewParser().Load(path, nil)
	require.ErrorIs(t, err, ErrInvalidAuth)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	_, err := NewParser().Load(filepath.Join(t.TempDir(), "nope.conf"), nil)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoConfigFile)
}

func TestLoad_NoCandidateFound(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "sysconf"))

	_, err := NewParser().Load("", nil)
	require.ErrorIs(t, err, ErrNoConfigFile)
}

func TestReadValue_TypedReads(t *testing.T) {
	file, err := ini.Load([]byte("[limits]\nretries = 7\ntimeout = 2.5\nenabled = yes\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, readValue(file, Entry{Key: Key{"limits", "retries"}, Default: 3}))
	assert.Equal(t, 2.5, readValue(file, Entry{Key: Key{"limits", "timeout"}, Default: 1.5}))
	assert.Equal(t, true, readValue(file, Entry{Key: Key{"limits", "enabled"}, Default: false}))
}

func TestReadValue_TypeMismatchFallsBack(t *testing.T) {
	// A value of the wrong type is masked per option, never an error.
	file, err := ini.Load([]byte("[limits]\nretries = many\ntimeout = soon\nenabled = maybe\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, readValue(file, Entry{Key: Key{"limits", "retries"}, Default: 3}))
	assert.Equal(t, 1.5, readValue(file, Entry{Key: Key{"limits", "timeout"}, Default: 1.5}))
	assert.Equal(t, false, readValue(file, Entry{Key: Key{"limits", "enabled"}, Default: false}))
}

func TestReadValue_MissingFallsBack(t *testing.T) {
	file, err := ini.Load([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "fallback", readValue(file, Entry{Key: Key{"dav", "user"}, Default: "fallback"}))
}

func TestResolve_ConsumedKeysLeaveTheFile(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	file, err := ini.Load([]byte("[dav]\nuser = alice\nbogus = 1\n"))
	require.NoError(t, err)

	p := NewParser()
	_, leftovers, err := p.resolve(file, nil)
	require.NoError(t, err)

	require.Len(t, leftovers, 1)
	assert.Equal(t, Key{"dav", "bogus"}, leftovers[0])
}
