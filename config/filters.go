package config

import (
	"fmt"
	"strconv"
)

// Filter selects the transform applied to a raw option string before
// it is stored. Filters form a closed set so the schema stays
// inspectable; dispatch happens in one place during resolution.
type Filter int

const (
	// FilterNone marks plain typed entries.
	FilterNone Filter = iota
	// FilterAuthMode accepts exactly "basic" or "digest".
	FilterAuthMode
	// FilterBoolOrPath reads "True"/"False" as a verification switch
	// and any other string as a certificate path.
	FilterBoolOrPath
	// FilterExpandPath expands a leading ~ in a path.
	FilterExpandPath
	// FilterWriteConfirm enables write support only for the exact
	// confirmation phrase.
	FilterWriteConfirm
)

// WriteConfirmPhrase must appear verbatim as the write_support value to
// enable the destructive write paths. Anything else disables them.
const WriteConfirmPhrase = "YesPleaseIDoHaveABackupOfMyData"

// Verify is the result of the bool-or-path filter: TLS certificate
// verification is either toggled on or off, or pointed at a CA bundle.
type Verify struct {
	Enabled bool
	CAPath  string
}

func (v Verify) String() string {
	if v.CAPath != "" {
		return v.CAPath
	}
	return strconv.FormatBool(v.Enabled)
}

// applyFilter runs the filter for key on a raw value, from the file or
// from the entry's raw default. It runs exactly once per entry, so the
// auth check and path expansion happen regardless of where the value
// came from. Only the auth-mode filter can fail; an invalid auth value
// aborts resolution rather than falling back to the default.
func applyFilter(f Filter, key Key, raw string) (any, error) {
	switch f {
	case FilterAuthMode:
		if raw != AuthBasic && raw != AuthDigest {
			return nil, fmt.Errorf("%w: %q is not allowed for %s", ErrInvalidAuth, raw, key.Pretty())
		}
		return raw, nil
	case FilterBoolOrPath:
		switch raw {
		case "True":
			return Verify{Enabled: true}, nil
		case "False":
			return Verify{}, nil
		default:
			return Verify{Enabled: true, CAPath: expandUser(raw)}, nil
		}
	case FilterExpandPath:
		return expandUser(raw), nil
	case FilterWriteConfirm:
		return raw == WriteConfirmPhrase, nil
	default:
		return raw, nil
	}
}
