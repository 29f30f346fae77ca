// Package config loads and validates the configuration shared by the
// pycard CardDAV tools.
//
// The package merges three sources of settings into a single Settings
// value: built-in defaults, an INI-style configuration file, and
// command-line flags.
//
// # Precedence
//
// Values are resolved in this order (later sources override earlier
// ones):
//
//  1. Schema defaults
//  2. The configuration file
//  3. Command-line flags the user actually set
//
// # Configuration file
//
// The file is located following the XDG base-directory convention; see
// CandidatePaths for the probe order. Recognized sections and options:
//
//	[dav]     user, passwd, resource, auth, verify
//	[sqlite]  path
//	[default] debug, write_support
//
// Options of the default section drop their section prefix in mangled
// names, so "debug" rather than "default__debug".
//
// # Usage
//
//	p := config.NewParser()
//	p.RegisterFlags(cmd.PersistentFlags())
//	p.Mandatory = []config.Key{{Section: config.SectionDAV, Option: "resource"}}
//
//	settings, err := p.Load(path, cmd.Flags())
//	if err != nil {
//	    // no usable configuration; report and exit non-zero
//	}
//
// Settings is immutable after Load returns. Unknown options left in the
// file are logged at debug level and never affect the result.
package config
