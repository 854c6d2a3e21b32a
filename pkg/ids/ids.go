// Package ids parses Ideographic Description Sequences: the ⿰⿱⿴... notation
// describing how a CJK character's visual form is assembled from sub-parts.
package ids

import (
	"regexp"
	"strconv"
	"strings"
)

// Operators is the fixed set of IDS structural codepoints.
const Operators = "⿰⿱⿲⿳⿴⿵⿶⿷⿸⿹⿺⿻⿼⿽⿾⿿〾"

// IsOperator reports whether r is an IDS structural operator.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Arity returns the number of operands an operator consumes.
func Arity(op rune) int {
	switch op {
	case '⿲', '⿳':
		return 3
	case '〾':
		return 1
	default:
		return 2
	}
}

// Node is one of Op, Literal or Numbered.
type Node interface {
	isNode()
}

// Op is a structural operator applied to its operands in order.
type Op struct {
	Operator rune
	Children []Node
}

// Literal is a component character appearing verbatim in the sequence.
type Literal struct {
	Char string
}

// Numbered is a {N} placeholder referencing a numbered component definition.
type Numbered struct {
	N int
}

func (Op) isNode()       {}
func (Literal) isNode()  {}
func (Numbered) isNode() {}

var regionTagRe = regexp.MustCompile(`\$\([^)]*\)`)

// Clean strips region-variant annotations of the form $(...) and stray ^
// markers from a raw IDS string.
func Clean(s string) string {
	cleaned := regionTagRe.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, "^", "")
	return strings.TrimSpace(cleaned)
}

type tokenKind int

const (
	tokChar tokenKind = iota
	tokNumbered
)

type token struct {
	kind tokenKind
	char rune
	num  int
}

// tokenize scans a cleaned IDS string left to right. {digits} becomes a
// numbered token; whitespace, parens and digits outside braces are skipped.
func tokenize(s string) []token {
	runes := []rune(Clean(s))
	var tokens []token
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{':
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j >= len(runes) {
				// unterminated brace, drop the rest
				return tokens
			}
			n, err := strconv.Atoi(string(runes[i+1 : j]))
			if err == nil {
				tokens = append(tokens, token{kind: tokNumbered, num: n})
			}
			i = j
		case strings.ContainsRune(" \t\r\n()}0123456789", r):
			// formatting noise
		default:
			tokens = append(tokens, token{kind: tokChar, char: r})
		}
	}
	return tokens
}

// Parse parses an IDS string into a syntax tree. An operator consumes its
// arity of following sub-nodes; children missing due to a truncated string
// are omitted rather than reported as an error, so callers must tolerate
// child-count mismatches. Returns nil when nothing parseable remains.
func Parse(s string) Node {
	tokens := tokenize(s)
	pos := 0
	var parseNext func() Node
	parseNext = func() Node {
		if pos >= len(tokens) {
			return nil
		}
		t := tokens[pos]
		pos++
		if t.kind == tokNumbered {
			return Numbered{N: t.num}
		}
		if IsOperator(t.char) {
			op := Op{Operator: t.char}
			for i := 0; i < Arity(t.char); i++ {
				if child := parseNext(); child != nil {
					op.Children = append(op.Children, child)
				}
			}
			return op
		}
		return Literal{Char: string(t.char)}
	}
	return parseNext()
}
