package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"
)

// Flag names of the generic command-line layer shared by every pycard
// tool.
const (
	FlagConfig = "config"
	FlagDebug  = "debug"
)

// Parser resolves the configuration for one tool invocation: built-in
// defaults first, then the configuration file, then command-line
// overrides. The zero value is not usable; use NewParser.
type Parser struct {
	Schema    []Entry
	Mandatory []Key

	// FlagKeys maps command-line flag names to schema keys. A flag the
	// user actually set replaces the resolved value for its key
	// unconditionally; untouched flags never shadow file values.
	FlagKeys map[string]Key

	// Logger defaults to slog.Default when nil.
	Logger *slog.Logger
}

// NewParser returns a parser over the default pycard schema with the
// generic debug flag bound.
func NewParser() *Parser {
	return &Parser{
		Schema: DefaultSchema(),
		FlagKeys: map[string]Key{
			FlagDebug: {DefaultSection, "debug"},
		},
	}
}

// RegisterFlags adds the generic command-line layer to a flag set: an
// alternate configuration file and the debug toggle. Tools register
// their own flags alongside and may bind them through FlagKeys.
func (p *Parser) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "alternate configuration file")
	fs.Bool(FlagDebug, false, "enable debug output")
}

// Load resolves the configuration file at path, or the first existing
// candidate location when path is empty, layers changed flags on top
// and returns the checked settings. flags may be nil.
func (p *Parser) Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	if err := validateSchema(p.Schema); err != nil {
		return nil, err
	}

	if path == "" {
		path = FindConfigFile()
	}
	if path == "" {
		p.log().Error("could not find a configuration file")
		return nil, ErrNoConfigFile
	}

	file, err := ini.Load(expandUser(path))
	if err != nil {
		p.log().Error("cannot read configuration file", "path", path, "err", err)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	p.log().Debug("using configuration file", "path", path)

	settings, leftovers, err := p.resolve(file, overridesFrom(flags, p.FlagKeys))
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("validate configuration: %w", err)
	}

	if !p.Check(settings, leftovers) {
		return nil, ErrMandatoryOption
	}
	return settings, nil
}

// resolve extracts every schema entry from the parsed file, falling
// back to declared defaults, then layers the overrides on top. The
// keys left unconsumed in the file come back for the leftover pass.
func (p *Parser) resolve(file *ini.File, overrides map[string]any) (*Settings, []Key, error) {
	values := make(map[string]any, len(p.Schema))
	for _, e := range p.Schema {
		var (
			v   any
			err error
		)
		if e.Filter != FilterNone {
			v, err = readFilter(file, e)
		} else {
			v = readValue(file, e)
		}
		if err != nil {
			return nil, nil, err
		}
		values[e.Key.Mangled()] = v

		// Consumed options leave the file so the leftover pass does
		// not re-report them.
		if sec, secErr := file.GetSection(e.Key.Section); secErr == nil {
			sec.DeleteKey(e.Key.Option)
		}
	}

	// Command line wins over file, file wins over default.
	for name, v := range overrides {
		values[name] = v
	}

	settings := &Settings{}
	for name, v := range values {
		if err := settings.set(name, v); err != nil {
			return nil, nil, err
		}
	}
	return settings, leftoverKeys(file), nil
}

// readValue reads an option with the reader matching the dynamic type
// of its default. A missing section, missing option, or value of the
// wrong type falls back to the default.
func readValue(file *ini.File, e Entry) any {
	key, err := fileKey(file, e.Key)
	if err != nil {
		return e.Default
	}
	switch d := e.Default.(type) {
	case bool:
		if v, err := key.Bool(); err == nil {
			return v
		}
		return d
	case int:
		if v, err := key.Int(); err == nil {
			return v
		}
		return d
	case float64:
		if v, err := key.Float64(); err == nil {
			return v
		}
		return d
	default:
		return key.String()
	}
}

// readFilter reads the raw string for a filtered entry, or its raw
// default when the file lacks the option, and applies the filter
// exactly once.
func readFilter(file *ini.File, e Entry) (any, error) {
	raw, _ := e.Default.(string)
	if key, err := fileKey(file, e.Key); err == nil {
		raw = key.String()
	}
	return applyFilter(e.Filter, e.Key, raw)
}

func fileKey(file *ini.File, k Key) (*ini.Key, error) {
	sec, err := file.GetSection(k.Section)
	if err != nil {
		return nil, err
	}
	return sec.GetKey(k.Option)
}

// leftoverKeys lists every option still present in the parsed file.
// These were never declared in the schema: user typos or deprecated
// keys, reported for diagnostics only.
func leftoverKeys(file *ini.File) []Key {
	var keys []Key
	for _, sec := range file.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			name = ""
		}
		for _, k := range sec.Keys() {
			keys = append(keys, Key{Section: name, Option: k.Name()})
		}
	}
	return keys
}

// overridesFrom collects the values of changed flags bound to schema
// keys, keyed by mangled name.
func overridesFrom(flags *pflag.FlagSet, flagKeys map[string]Key) map[string]any {
	overrides := make(map[string]any)
	if flags == nil {
		return overrides
	}
	flags.Visit(func(f *pflag.Flag) {
		key, bound := flagKeys[f.Name]
		if !bound {
			return
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(f.Name)
			overrides[key.Mangled()] = v
		case "int":
			v, _ := flags.GetInt(f.Name)
			overrides[key.Mangled()] = v
		case "float64":
			v, _ := flags.GetFloat64(f.Name)
			overrides[key.Mangled()] = v
		default:
			overrides[key.Mangled()] = f.Value.String()
		}
	})
	return overrides
}

func (p *Parser) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
