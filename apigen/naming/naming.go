// Package naming maps schema-supplied names to Rust identifiers and doc text.
//
// Rules, applied in order:
//  1. Every byte that is not an ASCII letter or digit becomes a word separator.
//  2. Words are split on separators, on lower-to-upper case boundaries and
//     between letters and digits ("v1beta" is three words).
//  3. VarName joins lowercased words with "_"; TypeName capitalizes each word.
//  4. A leading digit is prefixed with "_" (VarName) or "T" (TypeName).
//  5. Rust keywords get a trailing "_".
//
// All functions are pure. VarName is idempotent, so identifiers that were
// normalized when a description was built normalize to themselves.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Rust strict and reserved keywords.
var reservedWords = map[string]bool{
	"abstract": true,
	"as":       true,
	"async":    true,
	"await":    true,
	"become":   true,
	"box":      true,
	"break":    true,
	"const":    true,
	"continue": true,
	"crate":    true,
	"do":       true,
	"dyn":      true,
	"else":     true,
	"enum":     true,
	"extern":   true,
	"false":    true,
	"final":    true,
	"fn":       true,
	"for":      true,
	"if":       true,
	"impl":     true,
	"in":       true,
	"let":      true,
	"loop":     true,
	"macro":    true,
	"match":    true,
	"mod":      true,
	"move":     true,
	"mut":      true,
	"override": true,
	"priv":     true,
	"pub":      true,
	"ref":      true,
	"return":   true,
	"self":     true,
	"Self":     true,
	"static":   true,
	"struct":   true,
	"super":    true,
	"trait":    true,
	"true":     true,
	"try":      true,
	"type":     true,
	"typeof":   true,
	"unsafe":   true,
	"unsized":  true,
	"use":      true,
	"virtual":  true,
	"where":    true,
	"while":    true,
	"yield":    true,
}

// Field names every generated builder declares for itself.
var generatedFields = map[string]bool{
	"reqwest": true,
	"request": true,
}

// Module names every generated resource module declares for itself.
var generatedModules = map[string]bool{
	"params": true,
}

// IsReserved reports whether name is a Rust keyword.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// escapeReservedWord escapes a reserved word by appending an underscore.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return name + "_"
	}
	return name
}

// separate replaces every non alphanumeric ASCII byte with an underscore.
func separate(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isAlnum(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// squeeze collapses runs of underscores and trims them from both ends.
func squeeze(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prev := byte('_')
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' && prev == '_' {
			continue
		}
		b.WriteByte(c)
		prev = c
	}
	return strings.TrimRight(b.String(), "_")
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// VarName returns the snake_case identifier for name, used for functions,
// fields, arguments and modules. It returns "" when name has no letters or digits.
func VarName(name string) string {
	s := squeeze(separate(name))
	if s == "" {
		return ""
	}
	s = squeeze(strcase.ToSnake(s))
	if isDigit(s[0]) {
		s = "_" + s
	}
	return escapeReservedWord(s)
}

// TypeName returns the UpperCamelCase identifier for name, used for
// structs and enums. It returns "" when name has no letters or digits.
func TypeName(name string) string {
	s := squeeze(separate(name))
	if s == "" {
		return ""
	}
	s = strcase.ToCamel(s)
	if isDigit(s[0]) {
		s = "T" + s
	}
	return escapeReservedWord(s)
}

// VariantName returns the enum variant identifier for a wire value.
// Values that are entirely symbols map to "Value".
func VariantName(value string) string {
	if name := TypeName(value); name != "" {
		return name
	}
	return "Value"
}

// FieldName returns the identifier for a builder or schema field. Names the
// generated code reserves for itself get a trailing underscore.
func FieldName(name string) string {
	s := VarName(name)
	if generatedFields[s] {
		return s + "_"
	}
	return s
}

// ModuleName returns the module identifier for a resource. Names the
// generated code reserves for its own sub-modules get a trailing underscore.
func ModuleName(name string) string {
	s := VarName(name)
	if generatedModules[s] {
		return s + "_"
	}
	return s
}

// BuilderName returns the builder type name for a method id.
func BuilderName(methodID string) string {
	return TypeName(methodID) + "MethodBuilder"
}

// ActionName returns the action type name for a resource identifier.
func ActionName(resourceID string) string {
	return TypeName(resourceID) + "Action"
}

// DocLines splits doc text into comment lines. Carriage returns are dropped,
// trailing whitespace is trimmed from each line and leading and trailing
// blank lines are removed. Interior blank lines are kept.
func DocLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ResourceDoc is the doc text for the callable returning a child resource's actions.
func ResourceDoc(resourceID string) string {
	return "Actions that can be performed on the " + resourceID + " resource"
}

// StringLiteral returns s as a Rust string literal.
func StringLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
