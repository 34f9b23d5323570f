// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
	"io"

	phfwd "github.com/CStanKonrad/IPPPhoneForwarding"
	"github.com/CStanKonrad/IPPPhoneForwarding/registry"
	"github.com/sirupsen/logrus"
)

// cmdError is the single formatted stderr line §7 mandates: either
// "ERROR<infix><byte-offset>" or the bare "ERROR EOF" form.
type cmdError struct {
	infix string
	pos   int
	eof   bool
}

func (e *cmdError) Error() string {
	if e.eof {
		return "ERROR EOF"
	}
	return fmt.Sprintf("ERROR%s%d", e.infix, e.pos)
}

// Session drives one command stream against a base registry, following
// the dispatch tree of main.c's readOperation: peek a token kind, read
// the matching command, execute it against the current base. Grounded
// on original_source's main.c/parser.c/input.c, reshaped around Go's
// error-return idiom instead of the C original's global isError flag.
type Session struct {
	lexer     *Lexer
	out       io.Writer
	registry  *registry.Registry
	current   *phfwd.ForwardBase
	currentID string
	log       *logrus.Logger
}

// New builds a Session reading commands from r and writing command
// output to out. log may be nil; when set, it receives verbose
// per-command diagnostics additional to (never instead of) the §7
// error-line contract.
func New(r io.Reader, out io.Writer, log *logrus.Logger) *Session {
	return &Session{
		lexer:    NewLexer(r),
		out:      out,
		registry: registry.New(),
		log:      log,
	}
}

// Run executes commands until clean EOF (nil) or the first error, which
// is always a *cmdError ready to be printed verbatim to stderr.
func (s *Session) Run() error {
	for {
		if err := s.lexer.SkipSkipable(); err != nil {
			return s.lexError(err)
		}
		if s.lexer.AtEOF() {
			return nil
		}
		if err := s.command(); err != nil {
			return err
		}
	}
}

func (s *Session) debugf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func (s *Session) command() error {
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}
	switch kind {
	case Number:
		return s.fromNumber()
	case Word:
		return s.fromWord()
	case QM:
		return s.reverseCommand()
	case At:
		return s.nonTrivialCommand()
	default:
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}
}

// fromNumber handles the two commands that start with a number: `n ?`
// (get) and `n1 > n2` (add). Grounded on readOperatorGetFromWord1 and
// readOperatorRedirectWord1.
func (s *Session) fromNumber() error {
	n1 := s.lexer.ReadNumber()

	if err := s.lexer.SkipSkipable(); err != nil {
		return s.lexError(err)
	}
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}

	switch kind {
	case QM:
		s.lexer.ReadOperator()
		if s.current == nil {
			return s.opErrorAt(" ? ", n1.Pos)
		}
		s.debugf("get %q", n1.Text)
		s.print(s.current.Get(n1.Text))
		return nil

	case GT:
		gtTok := s.lexer.ReadOperator()

		if err := s.lexer.SkipSkipable(); err != nil {
			return s.lexError(err)
		}
		k2, err := s.lexer.PeekKind()
		if err != nil {
			return s.lexError(err)
		}
		if k2 != Number {
			return s.genericErrorAt(s.lexer.Pos() + 1)
		}
		n2 := s.lexer.ReadNumber()

		if s.current == nil {
			return s.opErrorAt(" > ", gtTok.Pos)
		}
		s.debugf("add %q -> %q", n1.Text, n2.Text)
		if err := s.current.Add(n1.Text, n2.Text); err != nil {
			return s.opErrorAt(" > ", n1.Pos)
		}
		return nil

	default:
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}
}

// fromWord handles NEW and DEL, the two word-operator commands; any
// other identifier standing alone is a syntax error (commands never
// start with an arbitrary bare word).
func (s *Session) fromWord() error {
	w := s.lexer.ReadWord()
	switch w.Text {
	case "NEW":
		return s.newCommand()
	case "DEL":
		return s.delCommand()
	default:
		return s.genericErrorAt(w.Pos)
	}
}

// newCommand: `NEW id`. Grounded on readOperationNew.
func (s *Session) newCommand() error {
	if err := s.lexer.SkipSkipable(); err != nil {
		return s.lexError(err)
	}
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}
	if kind != Word {
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}

	id := s.lexer.ReadWord()
	if id.Text == "" || id.Text == "NEW" || id.Text == "DEL" {
		return s.genericErrorAt(id.Pos)
	}

	s.debugf("select base %q", id.Text)
	s.current = s.registry.AddBase(id.Text)
	s.currentID = id.Text
	return nil
}

// delCommand: `DEL id` or `DEL n`, distinguished by the next token's
// kind. Grounded on readOperationDelete/readOperationDeleteBase/
// readOperationDeleteNumber.
func (s *Session) delCommand() error {
	if err := s.lexer.SkipSkipable(); err != nil {
		return s.lexError(err)
	}
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}

	switch kind {
	case Number:
		n := s.lexer.ReadNumber()
		if s.current == nil {
			return s.opErrorAt(" DEL ", n.Pos)
		}
		s.debugf("remove %q", n.Text)
		s.current.Remove(n.Text)
		return nil

	case Word:
		id := s.lexer.ReadWord()
		s.debugf("delete base %q", id.Text)
		if !s.registry.DelBase(id.Text) {
			return s.opErrorAt(" DEL ", id.Pos)
		}
		if s.currentID == id.Text {
			s.current = nil
			s.currentID = ""
		}
		return nil

	default:
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}
}

// reverseCommand: `? n`. Grounded on readOperationReverse.
func (s *Session) reverseCommand() error {
	opTok := s.lexer.ReadOperator()

	if err := s.lexer.SkipSkipable(); err != nil {
		return s.lexError(err)
	}
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}
	if kind != Number {
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}
	n := s.lexer.ReadNumber()

	if s.current == nil {
		return s.opErrorAt(" ? ", opTok.Pos)
	}
	s.debugf("reverse %q", n.Text)
	s.print(s.current.Reverse(n.Text))
	return nil
}

// nonTrivialCommand: `@ n`, counting against length len(n)-12 (floored
// at 0). Grounded on readOperationNonTrivial.
func (s *Session) nonTrivialCommand() error {
	opTok := s.lexer.ReadOperator()

	if err := s.lexer.SkipSkipable(); err != nil {
		return s.lexError(err)
	}
	kind, err := s.lexer.PeekKind()
	if err != nil {
		return s.lexError(err)
	}
	if kind != Number {
		return s.genericErrorAt(s.lexer.Pos() + 1)
	}
	n := s.lexer.ReadNumber()

	if s.current == nil {
		return s.opErrorAt(" @ ", opTok.Pos)
	}

	length := 0
	if len(n.Text) > 12 {
		length = len(n.Text) - 12
	}
	s.debugf("non_trivial_count %q len=%d", n.Text, length)
	fmt.Fprintln(s.out, s.current.NonTrivialCount(n.Text, length))
	return nil
}

func (s *Session) print(ns phfwd.Numbers) {
	for _, n := range ns {
		fmt.Fprintln(s.out, n)
	}
}

func (s *Session) lexError(err error) error {
	if errors.Is(err, errCommentEOF) {
		return &cmdError{eof: true}
	}
	return s.genericErrorAt(s.lexer.Pos())
}

func (s *Session) genericErrorAt(pos int) error {
	return &cmdError{infix: " ", pos: pos}
}

func (s *Session) opErrorAt(infix string, pos int) error {
	return &cmdError{infix: infix, pos: pos}
}
