package shunting

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	tokPlus TokenType = iota
	tokMinus
	tokMult
	tokDivide
	tokMod
	tokPower
	tokBang
	tokIdent
	tokOParen
	tokCParen
	tokComma
	tokValue
)

// A Token is one lexical element of the input: a number, an identifier,
// an operator, a parenthesis or a comma. Pos is the byte offset of its
// first character.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func NewToken(t TokenType, value string, pos int) Token {
	return Token{Type: t, Value: value, Pos: pos}
}

// A Lexer splits an input string into Tokens. Tokens are produced
// lazily by successive calls to Next; the sequence ends with io.EOF.
type Lexer struct {
	input      string
	tokens     chan Token
	errors     chan error
	action     lActionFn
	start, pos int
	width      int
}

type lActionFn func(l *Lexer) lActionFn

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		errors: make(chan error, 2),
		tokens: make(chan Token, 2),
		action: lexWS,
	}
}

// Next returns the next Token of the input, io.EOF once the input is
// exhausted, or a *LexError on the first unrecognized character.
func (l *Lexer) Next() (Token, error) {
	for {
		select {
		case err := <-l.errors:
			if err != io.EOF {
				return Token{}, err
			}
		case t := <-l.tokens:
			return t, nil
		default:
			if l.action == nil {
				return Token{}, io.EOF
			}
			l.action = l.action(l)
		}
	}
}

const eof rune = 0

// Actions

func lexNumber(l *Lexer) lActionFn {
	l.acceptRun(numeric)

	if l.accept(".") {
		l.acceptRun(numeric)
	}

	if l.accept("eE") {
		mark := l.pos - l.width
		l.accept("+-")
		if l.acceptRun(numeric) == false {
			// an exponent marker with no digits makes the whole
			// number malformed
			ru, _ := utf8.DecodeRuneInString(l.input[mark:])
			return l.error(&LexError{Char: ru, Pos: mark})
		}
	}

	return lexNumberEndCheck
}

// A number directly followed by a letter, an underscore or a second
// decimal point is malformed, not two adjacent tokens.
func lexNumberEndCheck(l *Lexer) lActionFn {
	if l.accept(alphabetic + "_.") {
		l.backup()
		return l.errorHere()
	}

	l.emit(tokValue)

	return lexWS
}

func lexIdentifier(l *Lexer) lActionFn {
	l.acceptRun(alphabetic + numeric + "_")
	l.emit(tokIdent)
	return lexWS
}

func lexWS(l *Lexer) lActionFn {
	var ru rune
	for {
		ru = l.next()
		if unicode.IsSpace(ru) == false {
			break
		}
	}
	//we peek the last char
	l.backup()

	//we ignore all data
	l.ignore()

	if ru == eof {
		return nil
	}

	if l.accept(numeric) {
		return lexNumber
	}

	if l.accept(alphabetic + "_") {
		return lexIdentifier
	}

	//check for runes
	ru = l.next() //we know it is not eof
	if action, ok := runeToken[ru]; ok == true {
		return action
	}

	l.backup()
	return l.errorHere()
}

// static data

var numeric = "0123456789"

var alphabetic = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var runeToken = make(map[rune]lActionFn)

func registerRuneToken(ru rune, t TokenType) {
	runeToken[ru] = func(l *Lexer) lActionFn {
		l.emit(t)
		return lexWS
	}
}

func init() {
	registerRuneToken('+', tokPlus)
	registerRuneToken('-', tokMinus)
	registerRuneToken('*', tokMult)
	registerRuneToken('/', tokDivide)
	registerRuneToken('%', tokMod)
	registerRuneToken('^', tokPower)
	registerRuneToken('!', tokBang)
	registerRuneToken('(', tokOParen)
	registerRuneToken(')', tokCParen)
	registerRuneToken(',', tokComma)
}

// helpers

func (l *Lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *Lexer) emit(t TokenType) {
	l.tokens <- NewToken(t, l.current(), l.start)
	l.ignore()
}

func (l *Lexer) error(err error) lActionFn {
	if len(l.errors) == 0 {
		l.errors <- err
	}
	return nil
}

// errorHere reports the rune at the current position as unexpected.
func (l *Lexer) errorHere() lActionFn {
	pos := l.pos
	ru := l.next()
	return l.error(&LexError{Char: ru, Pos: pos})
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	var ru rune
	ru, l.width =
		utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return ru
}

func (l *Lexer) backup() {
	l.pos -= l.width
}

func (l *Lexer) peek() rune {
	ru := l.next()
	l.backup()
	return ru
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) accept(valid string) bool {
	if strings.IndexRune(valid, l.next()) >= 0 {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.IndexRune(valid, l.next()) >= 0 {
		accepted = true
	}
	l.backup()
	return accepted
}
