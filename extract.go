package placeholder

import "strings"

// Names returns the placeholder names referenced by template, deduplicated,
// in order of first appearance. Token boundaries are the ones Render uses:
// an unterminated { and everything after it reference nothing.
func Names(template string) []string {
	seen := make(map[string]bool)
	var names []string

	scan(template, func(name string) bool {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return true
	})

	return names
}

// Validate checks that values covers every name template references,
// without rendering. It returns a *MissingNameError for the first missing
// name, scanning left to right, or nil when the template would render.
func Validate(template string, values map[string]string) error {
	var missing *MissingNameError

	scan(template, func(name string) bool {
		if _, ok := values[name]; !ok {
			missing = &MissingNameError{Name: name}
			return false
		}
		return true
	})

	if missing != nil {
		return missing
	}
	return nil
}

// scan walks template's placeholder tokens left to right, calling visit
// with each name until visit returns false. Token boundaries match Render.
func scan(template string, visit func(name string) bool) {
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			return
		}

		end := strings.IndexByte(template[open+1:], '}')
		if end < 0 {
			return
		}

		if !visit(template[open+1 : open+1+end]) {
			return
		}
		template = template[open+end+2:]
	}
}
