// Package buildtool implements the build-tool backends for stack and cabal
// project layouts.
package buildtool

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
)

// descriptionFile is a parsed package description (.cabal) file. Only the
// fields the resolver needs are retained; everything else is skipped.
type descriptionFile struct {
	name      string
	buildType string
	stanzas   []stanza
}

// stanza is one target section of a description file.
type stanza struct {
	kind   string
	name   string
	fields map[string][]string
}

// field returns the values of a stanza field, or nil.
func (s stanza) field(name string) []string {
	return s.fields[name]
}

// first returns the first value of a stanza field, or "".
func (s stanza) first(name string) string {
	if vs := s.fields[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// stanzaKinds are the section headers that describe compilable targets.
var stanzaKinds = map[string]bool{
	"library":    true,
	"executable": true,
	"test-suite": true,
	"benchmark":  true,
}

// parseDescriptionFile reads and parses a .cabal file. The parser is
// deliberately shallow: it understands top-level fields, target stanza
// headers, and indented field lines with continuations. Conditional
// sections and fields it does not know are skipped, not rejected.
func parseDescriptionFile(path string) (*descriptionFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from project discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read package description"), "path", path)
	}
	return parseDescription(string(data)), nil
}

func parseDescription(src string) *descriptionFile {
	df := &descriptionFile{}

	var cur *stanza
	var curField string
	inSkippedSection := false

	for line := range strings.Lines(src) {
		text, indent, ok := trimCabalLine(line)
		if !ok {
			continue
		}

		if indent == 0 {
			curField = ""
			if key, value, isField := splitFieldLine(text); isField {
				cur = nil
				inSkippedSection = false
				df.setTopLevel(key, value)
				continue
			}

			kind, name := splitSectionHeader(text)
			if stanzaKinds[kind] {
				df.stanzas = append(df.stanzas, stanza{kind: kind, name: name, fields: map[string][]string{}})
				cur = &df.stanzas[len(df.stanzas)-1]
				inSkippedSection = false
			} else {
				// common stanzas, flags, source-repository, custom-setup
				cur = nil
				inSkippedSection = true
			}
			continue
		}

		if inSkippedSection || cur == nil {
			continue
		}

		if key, value, isField := splitFieldLine(text); isField {
			curField = key
			if value != "" {
				cur.fields[key] = append(cur.fields[key], splitListValues(value)...)
			}
			continue
		}

		// Continuation line of the current field.
		if curField != "" {
			cur.fields[curField] = append(cur.fields[curField], splitListValues(text)...)
		}
	}

	return df
}

func (df *descriptionFile) setTopLevel(key, value string) {
	switch key {
	case "name":
		df.name = value
	case "build-type":
		df.buildType = value
	}
}

// trimCabalLine strips comments and trailing space and reports the leading
// indentation. Blank and comment-only lines are dropped.
func trimCabalLine(line string) (text string, indent int, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "--") {
		return "", 0, false
	}
	if i := strings.Index(trimmed, " --"); i >= 0 {
		trimmed = strings.TrimRight(trimmed[:i], " \t")
	}
	return trimmed, len(line) - len(strings.TrimLeft(line, " \t")), true
}

// splitFieldLine splits "key: value" field lines. Section headers and
// continuation lines have no colon-terminated first word.
func splitFieldLine(text string) (key, value string, ok bool) {
	i := strings.Index(text, ":")
	if i < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(text[:i]))
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(text[i+1:]), true
}

// splitSectionHeader splits a stanza header into its kind and name.
func splitSectionHeader(text string) (kind, name string) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", ""
	}
	kind = strings.ToLower(parts[0])
	if len(parts) > 1 {
		name = parts[1]
	}
	return kind, name
}

// splitListValues splits a field value into list entries. Cabal list
// fields accept comma or whitespace separation.
func splitListValues(value string) []string {
	value = strings.ReplaceAll(value, ",", " ")
	return strings.Fields(value)
}
