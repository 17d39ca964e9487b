// Package parser turns one raw console input line into a command name plus
// an ordered list of typed literal arguments. It performs no semantic
// validation; it knows nothing about which commands exist or what arguments
// they expect.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"devconsole/pkg/contypes"
)

// Command is a parsed input line: the command name and its literal arguments.
type Command struct {
	Name string
	Args []contypes.Value
}

// numberPattern matches base-10 floating point literals: optional leading
// minus, integer part, optional fraction, optional exponent.
var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Parse tokenizes a raw input line. The first whitespace-delimited token is
// the command name; no quoting rules apply to it. Remaining tokens become
// literal values:
//
//   - a token wrapped in double quotes is a string literal, with `\"` and
//     `\\` unescaped; an unterminated quote is a parse error
//   - a bare `true` or `false` (case-sensitive) is a boolean literal
//   - a bare base-10 float is a number literal
//   - any other bare token is a string literal as-is
//
// An empty or all-whitespace line is an error; callers treat blank lines as
// a no-op before parsing.
func Parse(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty command")
	}

	name := input
	rest := ""
	if idx := strings.IndexFunc(input, unicode.IsSpace); idx >= 0 {
		name = input[:idx]
		rest = input[idx:]
	}

	args, err := parseArgs(rest)
	if err != nil {
		return nil, err
	}

	return &Command{Name: name, Args: args}, nil
}

// parseArgs tokenizes everything after the command name.
func parseArgs(s string) ([]contypes.Value, error) {
	var args []contypes.Value
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		if runes[i] == '"' {
			value, next, err := scanQuoted(runes, i)
			if err != nil {
				return nil, err
			}
			args = append(args, contypes.StringValue(value))
			i = next
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		args = append(args, classifyBare(string(runes[start:i])))
	}
	return args, nil
}

// scanQuoted consumes a double-quoted token starting at the opening quote,
// unescaping `\"` and `\\`. It returns the unescaped content and the index
// just past the closing quote.
func scanQuoted(runes []rune, start int) (string, int, error) {
	var buf strings.Builder
	i := start + 1
	for i < len(runes) {
		switch runes[i] {
		case '\\':
			if i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
				buf.WriteRune(runes[i+1])
				i += 2
				continue
			}
			buf.WriteRune(runes[i])
			i++
		case '"':
			i++
			if i < len(runes) && !unicode.IsSpace(runes[i]) {
				return "", 0, fmt.Errorf("unexpected character after closing quote")
			}
			return buf.String(), i, nil
		default:
			buf.WriteRune(runes[i])
			i++
		}
	}
	return "", 0, fmt.Errorf("unterminated quoted string")
}

// classifyBare resolves an unquoted token into a boolean, number or string
// literal.
func classifyBare(token string) contypes.Value {
	switch token {
	case "true":
		return contypes.BoolValue(true)
	case "false":
		return contypes.BoolValue(false)
	}
	if numberPattern.MatchString(token) {
		if n, err := strconv.ParseFloat(token, 64); err == nil {
			return contypes.NumberValue(n)
		}
	}
	return contypes.StringValue(token)
}
