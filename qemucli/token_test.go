package qemucli_test

import (
	"testing"

	"github.com/AlexSSD7/qargs/qemucli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		tokens []qemucli.Token
		want   []string
	}{
		{
			name: "empty",
		},
		{
			name: "continuations join without separator",
			tokens: []qemucli.Token{
				{Kind: qemucli.TokenContinuation, Payload: "-device"},
				{Kind: qemucli.TokenBoundary},
				{Kind: qemucli.TokenContinuation, Payload: "nvme"},
				{Kind: qemucli.TokenContinuation, Payload: ",serial=a"},
				{Kind: qemucli.TokenBoundary},
			},
			want: []string{"-device", "nvme,serial=a"},
		},
		{
			name: "trailing continuation",
			tokens: []qemucli.Token{
				{Kind: qemucli.TokenContinuation, Payload: "-S"},
				{Kind: qemucli.TokenBoundary},
				{Kind: qemucli.TokenContinuation, Payload: "x"},
			},
			want: []string{"-S", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qemucli.Reduce(tt.tokens))
		})
	}
}

func TestBuilderProperties(t *testing.T) {
	b := qemucli.NewBuilder()

	b.Option("drive")
	b.Field("if=none")
	b.Prop("id", "drive0")
	b.PathProp("file", "/vm/a,b.img")
	b.Field("readonly=on")
	b.Option("S")

	assert.Equal(t, []string{"-drive", "if=none,id=drive0,file=/vm/a,,b.img,readonly=on", "-S"}, b.Strings())
}

func TestBuilderAddMany(t *testing.T) {
	b := qemucli.NewBuilder()
	b.Option("drive")
	b.Field("if=none")
	b.Add(
		qemucli.MustNewFlagArg("S"),
		qemucli.MustNewStringArg("vga", "none"),
		qemucli.MustNewUintArg("m", 256),
	)

	assert.Equal(t, []string{"-drive", "if=none", "-S", "-vga", "none", "-m", "256"}, b.Strings())
}

func TestBuilderBoundaryPerArgument(t *testing.T) {
	b := qemucli.NewBuilder()
	b.Arg("vga", "none")
	b.End()
	b.End()
	b.Add(qemucli.MustNewUintArg("m", 512))

	tokens := b.Tokens()

	var boundaries int
	for _, tok := range tokens {
		if tok.Kind == qemucli.TokenBoundary {
			boundaries++
		}
	}

	args := qemucli.Reduce(tokens)
	require.Equal(t, []string{"-vga", "none", "-m", "512"}, args)
	assert.Equal(t, len(args), boundaries)
}

func TestBuilderUnknownOptionPanics(t *testing.T) {
	b := qemucli.NewBuilder()

	assert.Panics(t, func() { b.Option("hda") })
}

func TestBuilderTokensIsolated(t *testing.T) {
	b := qemucli.NewBuilder()
	b.Arg("name", "vm")

	tokens := b.Tokens()
	tokens[1].Payload = "changed"

	assert.Equal(t, []string{"-name", "vm"}, b.Strings())
}
