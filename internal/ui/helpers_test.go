package ui

import (
	"errors"
	"sync"

	"passwidget/internal/utils"
)

var errClipboardDenied = errors.New("clipboard access denied")

type fakeClipboard struct {
	mu      sync.Mutex
	content string
	writes  int
	err     error
	written chan string
}

func newFakeClipboard() *fakeClipboard {
	return &fakeClipboard{written: make(chan string, 8)}
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	if c.err == nil {
		c.content = text
	}
	c.written <- text
	return c.err
}

func (c *fakeClipboard) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// countingGenerator wraps utils.GeneratePassword and records each call.
type countingGenerator struct {
	calls []utils.GeneratorConfig
}

func (g *countingGenerator) generate(cfg utils.GeneratorConfig) string {
	g.calls = append(g.calls, cfg)
	return utils.GeneratePassword(cfg)
}

// fixedGenerator always returns pw.
func fixedGenerator(pw string) func(utils.GeneratorConfig) string {
	return func(utils.GeneratorConfig) string { return pw }
}
