package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
)

type scriptedReply struct {
	text string
	err  error
}

type recordedCall struct {
	prompt string
	opts   llm.Options
}

// scriptedGenerator replays replies in order and fails the test run loudly
// (via an error) when called more often than scripted
type scriptedGenerator struct {
	replies []scriptedReply
	calls   []recordedCall
}

func newScriptedGenerator(replies ...string) *scriptedGenerator {
	g := &scriptedGenerator{}
	for _, r := range replies {
		g.replies = append(g.replies, scriptedReply{text: r})
	}
	return g
}

func (g *scriptedGenerator) thenFail(err error) *scriptedGenerator {
	g.replies = append(g.replies, scriptedReply{err: err})
	return g
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string, opts llm.Options) (string, error) {
	g.calls = append(g.calls, recordedCall{prompt: prompt, opts: opts})
	if len(g.calls) > len(g.replies) {
		return "", fmt.Errorf("unexpected generation call #%d", len(g.calls))
	}
	r := g.replies[len(g.calls)-1]
	return r.text, r.err
}

func (g *scriptedGenerator) stages() []string {
	stages := make([]string, len(g.calls))
	for i, c := range g.calls {
		stages[i] = c.opts.Stage
	}
	return stages
}

// flakyStore fails the first failures inserts
type flakyStore struct {
	failures int
	calls    int
	inserted []*models.PreferenceRecord
}

func (s *flakyStore) InsertPreference(_ context.Context, record *models.PreferenceRecord) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("connection reset by peer")
	}
	s.inserted = append(s.inserted, record)
	return nil
}
