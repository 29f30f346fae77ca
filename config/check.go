package config

// Check reports whether every mandatory option resolved to a usable
// value. Leftover file keys never declared in the schema are logged at
// debug level first; they are user typos or deprecated options and do
// not affect the result. Each missing mandatory option is logged as an
// error. Load calls Check on every resolution; it is exported so tools
// layering extra checks on top can re-run it.
func (p *Parser) Check(s *Settings, leftovers []Key) bool {
	log := p.log()
	for _, k := range leftovers {
		log.Debug("ignoring option in configuration file", "key", k.Pretty())
	}

	ok := true
	for _, k := range p.Mandatory {
		v, err := s.value(k)
		if err != nil || isZero(v) {
			log.Error("mandatory option is missing", "key", k.Pretty())
			ok = false
		}
	}
	return ok
}

// isZero is the falsy rule for mandatory checks: empty strings, false
// booleans, zero numbers, and an all-zero Verify all count as missing.
func isZero(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case float64:
		return t == 0
	case Verify:
		var zero Verify
		return t == zero
	}
	return false
}
