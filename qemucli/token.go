// Qargs - A compiler from virtual machine descriptions to QEMU invocations.
// Copyright (c) 2023 The Qargs Authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package qemucli

import (
	"strings"
)

type TokenKind uint8

const (
	// TokenContinuation extends the argument currently being assembled.
	TokenContinuation TokenKind = iota
	// TokenBoundary closes the current argument.
	TokenBoundary
)

type Token struct {
	Kind    TokenKind
	Payload string
}

func (t Token) String() string {
	if t.Kind == TokenBoundary {
		return "|"
	}

	return "+" + t.Payload
}

// Reduce groups continuations between boundaries into argv entries. Payloads
// are concatenated as-is, and a trailing unterminated argument is kept.
func Reduce(tokens []Token) []string {
	var out []string

	var cur strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case TokenContinuation:
			cur.WriteString(t.Payload)
		case TokenBoundary:
			out = append(out, cur.String())
			cur.Reset()
		}
	}

	if cur.Len() > 0 {
		out = append(out, cur.String())
	}

	return out
}

// Builder is the token accumulator every argument builder writes into. It
// keeps the full emission log so that output can be inspected token by token.
type Builder struct {
	tokens []Token

	// open is set while the current argument has a non-empty payload.
	open bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a raw continuation with no separator. Empty payloads are
// dropped.
func (b *Builder) Append(payload string) {
	if payload == "" {
		return
	}

	b.tokens = append(b.tokens, Token{Kind: TokenContinuation, Payload: payload})
	b.open = true
}

// End closes the current argument. It is a no-op when nothing is pending,
// so every boundary in the log maps to exactly one argv entry.
func (b *Builder) End() {
	if !b.open {
		return
	}

	b.tokens = append(b.tokens, Token{Kind: TokenBoundary})
	b.open = false
}

// Option starts a new "-key" argument. Unknown keys are programmer errors.
func (b *Builder) Option(key string) {
	err := validateOptionKey(key)
	if err != nil {
		panic(err)
	}

	b.End()
	b.Append("-" + key)
	b.End()
}

// Field adds a comma-separated property fragment to the current argument.
func (b *Builder) Field(s string) {
	if s == "" {
		return
	}

	if b.open {
		s = "," + s
	}

	b.Append(s)
}

// Prop adds a key=value property to the current argument.
func (b *Builder) Prop(key string, value string) {
	b.Field(key + "=" + value)
}

// PathProp adds key=<path> with commas in the path escaped.
func (b *Builder) PathProp(key string, path string) {
	b.Field(key + "=")
	b.Append(EscapePath(path))
}

// Arg emits "-key value" as two complete arguments.
func (b *Builder) Arg(key string, value string) {
	b.Option(key)
	b.Append(value)
	b.End()
}

// Add emits typed args in order. Invalid args panic.
func (b *Builder) Add(args ...Arg) {
	encoded, err := EncodeArgs(args)
	if err != nil {
		panic(err)
	}

	b.End()
	for _, a := range encoded {
		b.Append(a)
		b.End()
	}
}

// Raw appends an argument verbatim. It is only used for user supplied text.
func (b *Builder) Raw(args ...string) {
	b.End()
	for _, a := range args {
		b.Append(a)
		b.End()
	}
}

// Tokens returns the emission log, closing any pending argument first.
func (b *Builder) Tokens() []Token {
	b.End()

	out := make([]Token, len(b.tokens))
	copy(out, b.tokens)

	return out
}

func (b *Builder) Strings() []string {
	return Reduce(b.Tokens())
}
