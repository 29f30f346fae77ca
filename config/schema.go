package config

import (
	"fmt"
	"strings"
)

// DefaultSection holds options that drop their section prefix in
// mangled names, debug for example.
const DefaultSection = "default"

// Sections used by the default schema.
const (
	SectionDAV = "dav"
	SectionDB  = "sqlite"
)

const defaultDBPath = "~/.pycard/abook.db"

// Key identifies a configuration option by section and option name.
type Key struct {
	Section string
	Option  string
}

// MangleName concatenates section and option into the flat name used
// outside section context: section__option. Options of the default (or
// empty) section keep their bare names.
func MangleName(section, option string) string {
	if section == DefaultSection || section == "" {
		return option
	}
	return section + "__" + option
}

// UnmangleName splits a mangled name back into section and option. A
// name without a separator belongs to the default section and comes
// back with an empty section.
func UnmangleName(name string) (section, option string) {
	if i := strings.Index(name, "__"); i >= 0 {
		return name[:i], name[i+2:]
	}
	return "", name
}

// Mangled returns the flat section__option name for the key.
func (k Key) Mangled() string {
	return MangleName(k.Section, k.Option)
}

// Pretty formats the key for log output, [section]option.
func (k Key) Pretty() string {
	if k.Section == DefaultSection || k.Section == "" {
		return k.Option
	}
	return fmt.Sprintf("[%s]%s", k.Section, k.Option)
}

// Entry declares one recognized option. Entries come in two shapes:
// a plain typed default, where the dynamic type of Default (bool, int,
// float64 or string) selects the file reader, or a Filter plus the raw
// string default that is fed through it when the file lacks the option.
type Entry struct {
	Key     Key
	Default any
	Filter  Filter
}

// DefaultSchema returns the schema table for pycard.conf.
func DefaultSchema() []Entry {
	return []Entry{
		{Key: Key{SectionDAV, "user"}, Default: ""},
		{Key: Key{SectionDAV, "passwd"}, Default: ""},
		{Key: Key{SectionDAV, "resource"}, Default: ""},
		{Key: Key{SectionDAV, "auth"}, Filter: FilterAuthMode, Default: AuthBasic},
		{Key: Key{SectionDAV, "verify"}, Filter: FilterBoolOrPath, Default: "True"},
		{Key: Key{SectionDB, "path"}, Filter: FilterExpandPath, Default: defaultDBPath},
		{Key: Key{DefaultSection, "debug"}, Default: false},
		{Key: Key{DefaultSection, "write_support"}, Filter: FilterWriteConfirm, Default: ""},
	}
}

// validateSchema rejects duplicate section/option pairs so a later
// entry cannot silently shadow an earlier one.
func validateSchema(entries []Entry) error {
	seen := make(map[Key]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Key.Pretty())
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}
