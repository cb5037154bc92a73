// Package parse parses calculator command lines.
//
// A command line consists of three whitespace-separated tokens: an operation
// name and two numeric operands. This package only deals with the shape of
// the line; checking the operation name against a registry is the caller's
// business.
package parse

import (
	"fmt"
	"strconv"
	"unicode"
)

// Command is the parse result of one command line.
type Command struct {
	// Name is the operation name as written, case unchanged.
	Name string
	// NameFrom and NameTo are byte offsets locating Name in the source line.
	NameFrom, NameTo int
	// A and B are the operand values.
	A, B float64
}

// Error is a parse error. From and To are byte offsets into the source line
// locating the offending token; for errors about the shape of the whole line
// they span the whole line.
type Error struct {
	Msg      string
	From, To int
}

func (e *Error) Error() string { return e.Msg }

type token struct {
	text     string
	from, to int
}

func tokenize(line string) []token {
	var tokens []token
	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{line[start:i], start, i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{line[start:], start, len(line)})
	}
	return tokens
}

// Parse parses one command line into a Command. The error, if non-nil, is
// always of type *Error.
func Parse(line string) (Command, error) {
	tokens := tokenize(line)
	if len(tokens) != 3 {
		return Command{}, &Error{
			Msg:  "command must have the form: <operation> <number1> <number2>",
			From: 0, To: len(line),
		}
	}
	cmd := Command{
		Name:     tokens[0].text,
		NameFrom: tokens[0].from,
		NameTo:   tokens[0].to,
	}
	operands := [2]*float64{&cmd.A, &cmd.B}
	for i, tok := range tokens[1:] {
		n, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return Command{}, &Error{
				Msg:  fmt.Sprintf("cannot parse number: %s", tok.text),
				From: tok.from, To: tok.to,
			}
		}
		*operands[i] = n
	}
	return cmd, nil
}
