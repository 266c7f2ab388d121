// Package clipboard provides clipboard backends for the text-edit engine.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by System when the platform has no clipboard
// utility available.
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// Backend is the clipboard contract shared by every type in this package.
type Backend interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// System uses the operating system clipboard.
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard: read: %w", err)
	}
	return s, nil
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}

// Memory is a process-local clipboard. The zero value is empty and ready to
// use.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

// Fallback reads and writes Primary, switching to Secondary for the rest of
// its life after the first Primary error. OnError, if set, sees that error.
type Fallback struct {
	Primary   Backend
	Secondary Memory
	OnError   func(error)

	mu     sync.Mutex
	failed bool
}

func (f *Fallback) ReadText() (string, error) {
	if f.usePrimary() {
		s, err := f.Primary.ReadText()
		if err == nil {
			return s, nil
		}
		f.fail(err)
	}
	return f.Secondary.ReadText()
}

func (f *Fallback) WriteText(s string) error {
	if f.usePrimary() {
		err := f.Primary.WriteText(s)
		if err == nil {
			return nil
		}
		f.fail(err)
	}
	return f.Secondary.WriteText(s)
}

func (f *Fallback) usePrimary() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Primary != nil && !f.failed
}

func (f *Fallback) fail(err error) {
	f.mu.Lock()
	f.failed = true
	f.mu.Unlock()
	if f.OnError != nil {
		f.OnError(err)
	}
}
