package solidity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoContract is returned when a source file declares no deployable
	// contract (abstract contracts, interfaces and libraries do not count).
	ErrNoContract = errors.New("no deployable contract declaration found")

	// ErrAmbiguousContract is returned when a source file declares more than
	// one deployable contract, so no single name can be derived from it.
	ErrAmbiguousContract = errors.New("multiple contract declarations found")
)

// declPattern matches contract declarations in comment- and string-stripped
// source. Group 1 captures an "abstract" qualifier, group 2 the name.
var declPattern = regexp.MustCompile(`\b(?:(abstract)\s+)?contract\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

// ContractName derives the name of the single deployable contract declared in
// src. Comments and string literals are stripped first so a declaration
// mentioned in a doc comment or revert string is never picked up, and the
// result is validated: zero matches is ErrNoContract, more than one is
// ErrAmbiguousContract.
func ContractName(src []byte) (string, error) {
	var names []string
	for _, m := range declPattern.FindAllSubmatch(stripCommentsAndStrings(src), -1) {
		if len(m[1]) > 0 { // abstract contract, not deployable
			continue
		}
		names = append(names, string(m[2]))
	}
	switch len(names) {
	case 0:
		return "", ErrNoContract
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousContract, strings.Join(names, ", "))
	}
}

// stripCommentsAndStrings blanks out line comments, block comments, and both
// quote styles of string literal, preserving byte offsets and newlines so the
// declaration scan only ever sees real code.
func stripCommentsAndStrings(src []byte) []byte {
	const (
		code = iota
		lineComment
		blockComment
		doubleQuoted
		singleQuoted
	)

	out := make([]byte, len(src))
	copy(out, src)

	state := code
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(out) && out[i+1] == '/':
				state = lineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				// Consume the opener's * too, or it would pair with a
				// following / and close the comment it just opened.
				state = blockComment
				out[i] = ' '
				i++
				out[i] = ' '
			case c == '"':
				state = doubleQuoted
				out[i] = ' '
			case c == '\'':
				state = singleQuoted
				out[i] = ' '
			}
		case lineComment:
			if c == '\n' {
				state = code
			} else {
				out[i] = ' '
			}
		case blockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = code
			} else if c != '\n' {
				out[i] = ' '
			}
		case doubleQuoted, singleQuoted:
			quote := byte('"')
			if state == singleQuoted {
				quote = '\''
			}
			switch c {
			case '\\':
				out[i] = ' '
				if i+1 < len(out) {
					i++
					out[i] = ' '
				}
			case quote:
				out[i] = ' '
				state = code
			default:
				if c != '\n' {
					out[i] = ' '
				}
			}
		}
	}
	return out
}
