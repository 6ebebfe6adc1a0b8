package store

import (
	"fmt"
	"sync"
	"time"
)

// DateLayout is the ISO-8601 form used for attempt keys: UTC with
// millisecond precision, e.g. 2024-05-01T12:00:00.000Z. Keys of this form
// sort lexically in time order.
const DateLayout = "2006-01-02T15:04:05.000Z"

// FormatDate renders t as an attempt key.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses an attempt key. Any RFC 3339 timestamp is accepted so
// records written with other precisions remain readable.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// KeyGen hands out strictly increasing attempt keys. Wall-clock time is
// used when it has moved past the last key; otherwise the last key plus
// one millisecond, so two attempts finished within the same millisecond
// never collide.
type KeyGen struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewKeyGen creates a key generator. A nil clock means time.Now.
func NewKeyGen(now func() time.Time) *KeyGen {
	if now == nil {
		now = time.Now
	}
	return &KeyGen{now: now}
}

// Next returns the next key.
func (g *KeyGen) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := g.now().UTC().Truncate(time.Millisecond)
	if !t.After(g.last) {
		t = g.last.Add(time.Millisecond)
	}
	g.last = t
	return FormatDate(t)
}

// After returns a key strictly later than key and every key issued so far.
// Used when key turned out to be taken already.
func (g *KeyGen) After(key string) (string, error) {
	t, err := ParseDate(key)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	t = t.Truncate(time.Millisecond).Add(time.Millisecond)
	if !t.After(g.last) {
		t = g.last.Add(time.Millisecond)
	}
	g.last = t
	return FormatDate(t), nil
}
