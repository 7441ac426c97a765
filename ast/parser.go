// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jot"
)

// Parse parses data as a JSON document whose top level is a single object.
//
// In case of error, the concrete type of the error is [*SyntaxError], and the
// returned object holds whatever members were completely parsed before the
// error was detected. A caller that ignores the error must not treat the
// partial tree as a faithful rendering of the input.
func Parse(data []byte) (*Object, error) {
	p := &parser{s: jot.NewScanner(data)}

	tok, err := p.next()
	if err != nil {
		return nil, err
	} else if tok != jot.LBrace {
		return nil, p.errorf("expected %v, got %v", jot.LBrace, tok)
	}
	obj, err := p.parseObject()
	if err != nil {
		return obj, err
	}

	// Only whitespace may remain after the document.
	if p.s.Next() {
		return obj, p.errorf("unexpected %v after object", p.s.Token())
	} else if serr := p.s.Err(); serr != nil {
		return obj, p.wrap(serr)
	}
	return obj, nil
}

// A SyntaxError reports a lexical or structural error in the input, and the
// byte offset at which it was detected.
type SyntaxError struct {
	Offset  int
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

type parser struct {
	s *jot.Scanner
}

// parseObject consumes zero or more key:value members and the closing brace.
// Precondition: the opening brace has been consumed.
func (p *parser) parseObject() (*Object, error) {
	obj := new(Object)

	tok, err := p.next()
	if err != nil {
		return obj, err
	} else if tok == jot.RBrace {
		return obj, nil // empty object
	}
	for {
		// Parse a single member: "key": value
		if tok != jot.String {
			return obj, p.errorf("expected object key, got %v", tok)
		}
		key := string(p.s.Text())

		if tok, err := p.next(); err != nil {
			return obj, err
		} else if tok != jot.Colon {
			return obj, p.errorf("expected %v, got %v", jot.Colon, tok)
		}

		val, err := p.parseValue()
		obj.Members = append(obj.Members, &Member{Key: key, Value: val})
		if err != nil {
			return obj, err
		}

		// Check whether we have more members (",") or are done ("}").
		tok, err = p.next()
		if err != nil {
			return obj, err
		} else if tok == jot.RBrace {
			return obj, nil // end of object
		} else if tok != jot.Comma {
			return obj, p.errorf("expected %v or %v, got %v", jot.Comma, jot.RBrace, tok)
		}
		tok, err = p.next() // advance to next key
		if err != nil {
			return obj, err
		}
	}
}

// parseValue consumes a single member value: a nested object, an array, or a
// scalar. On error the value may be a partially-built subtree.
func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok {
	case jot.LBrace:
		return p.parseObject()
	case jot.LSquare:
		return p.parseArray()
	case jot.String, jot.Number, jot.True, jot.False, jot.Null:
		return p.parseScalar(tok)
	default:
		return nil, p.errorf("unexpected %v", tok)
	}
}

// parseArray consumes zero or more comma-separated array elements and the
// closing bracket. Elements are scalars or objects; this grammar does not
// permit an array directly inside another array.
// Precondition: the opening bracket has been consumed.
func (p *parser) parseArray() (Array, error) {
	var arr Array

	tok, err := p.next()
	if err != nil {
		return arr, err
	} else if tok == jot.RSquare {
		return arr, nil // empty array
	}
	for {
		switch tok {
		case jot.LBrace:
			obj, err := p.parseObject()
			arr = append(arr, obj)
			if err != nil {
				return arr, err
			}
		case jot.String, jot.Number, jot.True, jot.False, jot.Null:
			elt, err := p.parseScalar(tok)
			if err != nil {
				return arr, err
			}
			arr = append(arr, elt)
		default:
			return arr, p.errorf("unexpected %v in array", tok)
		}

		tok, err = p.next()
		if err != nil {
			return arr, err
		} else if tok == jot.RSquare {
			return arr, nil // end of array
		} else if tok != jot.Comma {
			return arr, p.errorf("expected %v or %v, got %v", jot.Comma, jot.RSquare, tok)
		}
		tok, err = p.next()
		if err != nil {
			return arr, err
		}
	}
}

// parseScalar converts the current token into its value representation.
func (p *parser) parseScalar(tok jot.Token) (Value, error) {
	switch tok {
	case jot.String:
		return String(p.s.Text()), nil
	case jot.Number:
		f, err := strconv.ParseFloat(string(p.s.Text()), 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", p.s.Text())
		}
		return Number(f), nil
	case jot.True:
		return Bool(true), nil
	case jot.False:
		return Bool(false), nil
	case jot.Null:
		return Null, nil
	}
	return nil, p.errorf("unexpected %v", tok)
}

// next advances the scanner and reports the token it finds.  The end of input
// and a lexical error are both structural errors here, since the parser only
// asks for a token when one is required.
func (p *parser) next() (jot.Token, error) {
	if p.s.Next() {
		return p.s.Token(), nil
	}
	if err := p.s.Err(); err != nil {
		return jot.Invalid, p.wrap(err)
	}
	return jot.Invalid, p.errorf("unexpected end of input")
}

func (p *parser) errorf(msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset:  p.s.Span().Pos,
		Message: fmt.Sprintf(msg, args...),
	}
}

func (p *parser) wrap(err error) *SyntaxError {
	return &SyntaxError{
		Offset:  p.s.Span().Pos,
		Message: err.Error(),
		err:     err,
	}
}
