package config

import (
	"fmt"
	"log/slog"
)

// Auth modes accepted for the dav auth option.
const (
	AuthBasic  = "basic"
	AuthDigest = "digest"
)

// Settings is the resolved configuration: one typed field per schema
// entry. It is built once per process invocation and not mutated
// afterwards; command-line overrides are layered in during resolution.
// Two Settings values compare equal with == when every option resolved
// to the same value.
type Settings struct {
	DAVUser     string
	DAVPasswd   string
	DAVResource string
	DAVAuth     string `validate:"omitempty,oneof=basic digest"`
	DAVVerify   Verify

	// DBPath locates the local address-book database, with ~ already
	// expanded.
	DBPath string

	Debug        bool
	WriteSupport bool
}

// Pair is one resolved option, used when enumerating a Settings value.
type Pair struct {
	Key   Key
	Value any
}

// Pairs lists every resolved option with its key, in schema order.
func (s *Settings) Pairs() []Pair {
	return []Pair{
		{Key{SectionDAV, "user"}, s.DAVUser},
		{Key{SectionDAV, "passwd"}, s.DAVPasswd},
		{Key{SectionDAV, "resource"}, s.DAVResource},
		{Key{SectionDAV, "auth"}, s.DAVAuth},
		{Key{SectionDAV, "verify"}, s.DAVVerify},
		{Key{SectionDB, "path"}, s.DBPath},
		{Key{DefaultSection, "debug"}, s.Debug},
		{Key{DefaultSection, "write_support"}, s.WriteSupport},
	}
}

// Dump debug-logs the effective configuration, exactly as the rest of
// the program sees it, not the raw file contents. The dav passwd value
// is redacted.
func (s *Settings) Dump(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	log.Debug("using configuration")
	for _, p := range s.Pairs() {
		value := p.Value
		if p.Key == (Key{SectionDAV, "passwd"}) && s.DAVPasswd != "" {
			value = "<redacted>"
		}
		log.Debug("setting", "key", p.Key.Pretty(), "value", value)
	}
}

// set stores a resolved value into its field. Values carry the type
// their schema entry produces; anything else is a programming error in
// the schema or a flag binding.
func (s *Settings) set(name string, value any) error {
	ok := true
	switch name {
	case "dav__user":
		s.DAVUser, ok = value.(string)
	case "dav__passwd":
		s.DAVPasswd, ok = value.(string)
	case "dav__resource":
		s.DAVResource, ok = value.(string)
	case "dav__auth":
		s.DAVAuth, ok = value.(string)
	case "dav__verify":
		switch v := value.(type) {
		case Verify:
			s.DAVVerify = v
		case bool:
			s.DAVVerify = Verify{Enabled: v}
		default:
			ok = false
		}
	case "sqlite__path":
		s.DBPath, ok = value.(string)
	case "debug":
		s.Debug, ok = value.(bool)
	case "write_support":
		s.WriteSupport, ok = value.(bool)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	if !ok {
		return fmt.Errorf("option %s: unexpected value type %T", name, value)
	}
	return nil
}

// value looks a key up by its mangled name.
func (s *Settings) value(k Key) (any, error) {
	for _, p := range s.Pairs() {
		if p.Key.Mangled() == k.Mangled() {
			return p.Value, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOption, k.Mangled())
}
