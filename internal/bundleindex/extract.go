package bundleindex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ExtractObject returns the raw JSON object passed as definition to the define() call contained in buf.
//
// The accepted grammar is
//
//	{comment} "define" "(" [string ","] [array ","] object ")" [";"]
//
// where whitespace and JavaScript comments may appear between all tokens, and string, array and object are JSON values.
// Anything else is reported as ErrUnrecognizedFormat.
func ExtractObject(buf []byte) ([]byte, error) {
	s := &scanner{buf: buf}
	s.skip()
	if !s.consume("define") {
		return nil, s.errorf("expected define")
	}
	s.skip()
	if !s.consume("(") {
		return nil, s.errorf("expected '(' after define")
	}

	s.skip()
	if s.peek() == '"' {
		// module id
		if _, err := s.value('"'); err != nil {
			return nil, err
		}
		s.skip()
		if !s.consume(",") {
			return nil, s.errorf("expected ',' after module id")
		}
		s.skip()
	}
	if s.peek() == '[' {
		if _, err := s.value('['); err != nil {
			return nil, err
		}
		s.skip()
		if !s.consume(",") {
			return nil, s.errorf("expected ',' after dependency list")
		}
		s.skip()
	}
	obj, err := s.value('{')
	if err != nil {
		return nil, err
	}

	s.skip()
	if !s.consume(")") {
		return nil, s.errorf("expected ')' after definition")
	}
	s.skip()
	s.consume(";")
	s.skip()
	if !s.eof() {
		return nil, s.errorf("unexpected content after define()")
	}
	return obj, nil
}

type scanner struct {
	buf []byte
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.buf)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.buf[s.pos]
}

func (s *scanner) consume(lit string) bool {
	if bytes.HasPrefix(s.buf[s.pos:], []byte(lit)) {
		s.pos += len(lit)
		return true
	}
	return false
}

// skip advances over whitespace, block comments and line comments
func (s *scanner) skip() {
	for !s.eof() {
		switch {
		case isSpace(s.peek()):
			s.pos++
		case s.consume("/*"):
			end := bytes.Index(s.buf[s.pos:], []byte("*/"))
			if end < 0 {
				s.pos = len(s.buf)
				return
			}
			s.pos += end + 2
		case s.consume("//"):
			end := bytes.IndexByte(s.buf[s.pos:], '\n')
			if end < 0 {
				s.pos = len(s.buf)
				return
			}
			s.pos += end + 1
		default:
			return
		}
	}
}

// value reads a single JSON value starting with the byte first at the current position and returns it raw
func (s *scanner) value(first byte) ([]byte, error) {
	if s.peek() != first {
		return nil, s.errorf("expected '%c'", first)
	}
	dec := json.NewDecoder(bytes.NewReader(s.buf[s.pos:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON at offset %d: %v", ErrUnrecognizedFormat, s.pos, err)
	}
	s.pos += int(dec.InputOffset())
	return raw, nil
}

func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrUnrecognizedFormat, fmt.Sprintf(format, args...), s.pos)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
