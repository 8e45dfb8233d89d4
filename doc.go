// Package placeholder renders text templates by substituting {name}
// placeholders with caller-supplied values.
//
// A placeholder templating engine without the complexity: no conditionals,
// no loops, no filters, no escaping. A template is scanned once from left
// to right, every {name} token is replaced by the value mapped to name, and
// the first token whose name has no value fails the whole render.
//
// # Syntax
//
// A placeholder is a { followed by the next }. The text strictly between
// them is the name, matched against the value mapping exactly as written:
//
//	<h1>{greet} {name}</h1>
//
// Names are opaque. No trimming or validation is applied, so "{ name }" and
// "{name}" are different tokens, and "{}" is a token whose name is the
// empty string.
//
// A { with no matching } before the end of the template is not a token; it
// and everything after it are literal output. A } outside a token is
// always literal.
//
// # Substitution
//
// Substitution is strictly single-pass. Values are inserted verbatim and
// never re-scanned, so a value containing {other} does not trigger further
// substitution. Rendering is deterministic, has no side effects, and never
// mutates the value mapping, so concurrent renders may share a template
// and mapping freely.
//
// # Errors
//
// The only render failure is a name with no value. Rendering stops at the
// first one, scanning left to right, and returns a *MissingNameError
// carrying that name:
//
//	_, err := placeholder.Render("<h1>{greet} {name}</h1>", map[string]string{
//		"greet": "Hello",
//	})
//	var missing *placeholder.MissingNameError
//	errors.As(err, &missing) // missing.Name == "name"
//
// There is no partial output: on failure the returned string is empty.
//
// # Example
//
//	values := map[string]string{
//		"greet": "Hello",
//		"name":  "Homer",
//		"food":  "Donuts",
//	}
//	out, err := placeholder.Render("<h1>{greet} {name}</h1><p>Do you like {food}?</p>", values)
//	// out: "<h1>Hello Homer</h1><p>Do you like Donuts?</p>"
//
// # Inspection
//
// Names returns the names a template references, and Validate checks a
// mapping against a template without rendering:
//
//	names := placeholder.Names("{greet}, {name}!") // ["greet", "name"]
//	err := placeholder.Validate("{greet}, {name}!", values)
//
// # Values Documents
//
// ParseValues decodes a YAML (or JSON) mapping held in memory into a value
// mapping:
//
//	values, err := placeholder.ParseValues([]byte("greet: Hello\nname: Homer\n"))
package placeholder
