package repl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/codingchica/patterns/internal/factory"
	"github.com/codingchica/patterns/internal/strategy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r, err := New(&Config{Out: &out, Logger: zap.NewNop()})
	require.NoError(t, err)
	return r, &out
}

func TestNew_Defaults(t *testing.T) {
	r, err := New(&Config{})
	require.NoError(t, err)

	assert.Same(t, factory.Instance(), r.factory)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.out)
	assert.Nil(t, r.Current())

	_, err = uuid.Parse(r.SessionID())
	assert.NoError(t, err, "session id should be a UUID")
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_UniqueSessions(t *testing.T) {
	a, _ := newTestREPL(t)
	b, _ := newTestREPL(t)
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestProcessInput_CreateHuman(t *testing.T) {
	r, out := newTestREPL(t)

	require.NoError(t, r.processInput("human Alice adult a person"))
	require.NotNil(t, r.Current())
	assert.Equal(t, "Alice", r.Current().Name())
	assert.Equal(t, "a person", r.Current().Description())
	assert.Contains(t, out.String(), `Created Person "Alice"`)

	want, err := factory.Instance().Human("Alice", "a person", true)
	require.NoError(t, err)
	assert.True(t, want.Equal(r.Current()))
}

func TestProcessInput_FlyLifecycle(t *testing.T) {
	r, out := newTestREPL(t)

	require.NoError(t, r.processInput("squirrel Rocky juvenile a squirrel"))
	out.Reset()
	require.NoError(t, r.processInput("fly"))
	assert.Equal(t, "Rocky: Unable to fly\n", out.String())

	require.NoError(t, r.processInput("strategy flap wings"))
	out.Reset()
	require.NoError(t, r.processInput("fly"))
	assert.Equal(t, "Rocky: Flap wings and fly.\n", out.String())

	require.NoError(t, r.processInput("strategy none"))
	_, ok := r.Current().FlyingStrategy()
	assert.False(t, ok)
}

func TestProcessInput_AdultSquirrelGlides(t *testing.T) {
	r, _ := newTestREPL(t)

	require.NoError(t, r.processInput("SQUIRREL Rocky adult a squirrel"))
	s, ok := r.Current().FlyingStrategy()
	require.True(t, ok)
	assert.True(t, strategy.Equal(strategy.Gliding{}, s))
}

func TestProcessInput_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown command", "teleport", "unknown command"},
		{"fly without animal", "fly", "no animal yet"},
		{"show without animal", "show", "no animal yet"},
		{"strategy without animal", "strategy gliding", "no animal yet"},
		{"too few args", "human Alice", "usage: human"},
		{"bad age", "human Alice ancient a person", "age must be"},
		{"bad status", "status abc", "invalid status code"},
		{"status without code", "status", "usage: status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestREPL(t)
			err := r.processInput(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProcessInput_UnknownStrategy(t *testing.T) {
	r, _ := newTestREPL(t)
	require.NoError(t, r.processInput("human Alice child a person"))

	err := r.processInput("strategy rocket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flying strategy")
	_, ok := r.Current().FlyingStrategy()
	assert.False(t, ok, "failed strategy change must leave the animal untouched")
}

func TestProcessInput_Show(t *testing.T) {
	r, out := newTestREPL(t)
	require.NoError(t, r.processInput("human Alice adult a person"))
	out.Reset()

	require.NoError(t, r.processInput("show"))
	assert.Contains(t, out.String(), "Description: a person")
	assert.Contains(t, out.String(), "airplane")
	assert.Contains(t, out.String(), "Homo sapiens (Hominidae, Primates)")
}

func TestProcessInput_Strategies(t *testing.T) {
	r, out := newTestREPL(t)
	require.NoError(t, r.processInput("strategies"))

	for _, s := range strategy.All() {
		assert.Contains(t, out.String(), s.FlyingMessage())
	}
}

func TestProcessInput_Status(t *testing.T) {
	r, out := newTestREPL(t)
	require.NoError(t, r.processInput("status 404 200 418"))

	assert.Contains(t, out.String(), "404  Not Found (client_error)")
	assert.Contains(t, out.String(), "200  OK (successful)")
	assert.Contains(t, out.String(), "418  unknown")
}

func TestProcessInput_HelpAndExit(t *testing.T) {
	r, out := newTestREPL(t)

	require.NoError(t, r.processInput("help"))
	assert.Contains(t, out.String(), "Available Commands")

	err := r.processInput("quit")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestProcessInput_Blank(t *testing.T) {
	r, out := newTestREPL(t)
	assert.NoError(t, r.processInput("   "))
	assert.Empty(t, out.String())
}

func TestCreateCommand_UnknownKind(t *testing.T) {
	r, _ := newTestREPL(t)

	err := r.createCommand(factory.Kind("dragon"))([]string{"Smaug", "adult", "a dragon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown animal kind "dragon"`)
	assert.Nil(t, r.Current())
}

func TestProcessInput_LogsWithSessionID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r, err := New(&Config{Out: &bytes.Buffer{}, Logger: zap.New(core)})
	require.NoError(t, err)

	require.NoError(t, r.processInput("human Alice adult a person"))

	entries := logs.FilterMessage("created animal").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, r.SessionID(), fields["session_id"])
	assert.Equal(t, "human", fields["kind"])
	assert.Equal(t, true, fields["adult"])
}
