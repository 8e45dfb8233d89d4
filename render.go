package placeholder

import "strings"

// Render substitutes every {name} placeholder in template with its value
// from values and returns the result.
//
// The template is scanned once, left to right. Text outside placeholders is
// copied verbatim. Each token's name is the exact text between { and the
// next }, looked up in values with no trimming or case folding. Values are
// inserted verbatim and never re-scanned.
//
// If a referenced name has no entry in values, Render stops at the first
// such token and returns an empty string and a *MissingNameError carrying
// that name. There is no partial output.
//
// A { with no matching } before the end of the template is literal, along
// with everything after it. A } outside a token is literal. An empty
// template renders to an empty string.
func Render(template string, values map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			out.WriteString(template)
			return out.String(), nil
		}

		end := strings.IndexByte(template[open+1:], '}')
		if end < 0 {
			// Unterminated token: the brace and the rest are literal.
			out.WriteString(template)
			return out.String(), nil
		}

		name := template[open+1 : open+1+end]
		value, ok := values[name]
		if !ok {
			return "", &MissingNameError{Name: name}
		}

		out.WriteString(template[:open])
		out.WriteString(value)
		template = template[open+end+2:]
	}
}
