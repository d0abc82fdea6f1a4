// Package enhance rewrites user texts with a language model.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/m-zajac/portfoliogen/internal/app"
	"github.com/sirupsen/logrus"
)

// DefaultMaxAttempts is the number of generation attempts made before giving up.
const DefaultMaxAttempts = 3

var errEmptyResponse = errors.New("empty response")

// Generator produces completion for given prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Enhancer implements app.Enhancer with a Generator.
// Failed generations are retried with exponential backoff and jitter.
// When all attempts fail, original input is returned.
type Enhancer struct {
	gen         Generator
	maxAttempts int
	l           logrus.FieldLogger

	backoff func(attempt int) time.Duration
}

var _ app.Enhancer = &Enhancer{}

// New creates new Enhancer instance.
// If gen is nil, enhancer returns all inputs unchanged.
func New(gen Generator, maxAttempts int, l logrus.FieldLogger) *Enhancer {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Enhancer{
		gen:         gen,
		maxAttempts: maxAttempts,
		l:           l,
		backoff:     jitteredBackoff,
	}
}

// Enhance rewrites text following the instruction.
// Blank text gives empty result without calling the generator.
func (e *Enhancer) Enhance(ctx context.Context, instruction string, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if e.gen == nil {
		return text
	}

	prompt := fmt.Sprintf("%s\n\nContent: %s\n\nReturn ONLY the result, no explanations:", instruction, text)
	resp, err := e.generate(ctx, prompt)
	if err != nil {
		e.l.Warnf("enhancing text failed, using original: %v", err)
		return text
	}

	return firstLine(resp)
}

// EnhanceBatch rewrites all items with a single generation call.
//
// Result has always the same length as items. Numbered response lines are matched with
// items by their numbers, otherwise lines are taken in order. Items without matching line
// are kept as they are.
func (e *Enhancer) EnhanceBatch(ctx context.Context, instruction string, items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	if e.gen == nil {
		return items
	}

	var b strings.Builder
	b.WriteString(instruction)
	b.WriteString("\n\nItems:\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\nReturn ONLY a numbered list with one improved item per line, in the same order, no explanations:")

	resp, err := e.generate(ctx, b.String())
	if err != nil {
		e.l.Warnf("enhancing %d items failed, using originals: %v", len(items), err)
		return items
	}

	lines := ParseList(resp)
	if len(lines) == 0 {
		e.l.Warnf("enhancing %d items: no usable lines in response, using originals", len(items))
		return items
	}

	return place(items, lines)
}

// generate calls the generator until it returns non blank response.
func (e *Enhancer) generate(ctx context.Context, prompt string) (string, error) {
	var err error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		if attempt > 0 {
			if werr := wait(ctx, e.backoff(attempt-1)); werr != nil {
				return "", fmt.Errorf("waiting for retry: %w (last error: %v)", werr, err)
			}
		}

		var resp string
		resp, err = e.gen.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(resp) == "" {
			err = errEmptyResponse
		}
		if err == nil {
			return resp, nil
		}
		e.l.Debugf("generation attempt %d/%d failed: %v", attempt+1, e.maxAttempts, err)
	}

	return "", fmt.Errorf("all %d attempts failed, last error: %w", e.maxAttempts, err)
}

// place builds result of the same length as items.
func place(items []string, lines []ListItem) []string {
	result := make([]string, len(items))
	copy(result, items)

	if numbered := numberedLines(lines, len(items)); len(numbered) > 0 {
		for _, line := range numbered {
			result[line.Number-1] = line.Text
		}
		return result
	}

	for i, line := range lines {
		if i >= len(result) {
			break
		}
		result[i] = line.Text
	}

	return result
}

// numberedLines returns numbered lines if each of them points to a distinct item.
func numberedLines(lines []ListItem, n int) []ListItem {
	var numbered []ListItem
	seen := make(map[int]bool)
	for _, line := range lines {
		if line.Number == 0 {
			continue
		}
		if line.Number > n || seen[line.Number] {
			return nil
		}
		seen[line.Number] = true
		numbered = append(numbered, line)
	}

	return numbered
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}

	return ""
}

// jitteredBackoff returns 2^attempt seconds plus up to one second of jitter.
func jitteredBackoff(attempt int) time.Duration {
	return time.Duration((math.Pow(2, float64(attempt)) + rand.Float64()) * float64(time.Second))
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
