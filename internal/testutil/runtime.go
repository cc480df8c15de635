package testutil

import (
	"sync"

	"nibblesprice/internal/host"
)

// LogEntry is one error recorded by a FakeRuntime
type LogEntry struct {
	Message string
	Err     error
}

// FakeRuntime is an in-memory implementation of host.Runtime for testing
type FakeRuntime struct {
	Settings map[string]string

	mu      sync.Mutex
	entries []LogEntry
}

var _ host.Runtime = (*FakeRuntime)(nil)

// NewFakeRuntime creates a fake runtime holding the given settings
func NewFakeRuntime(settings map[string]string) *FakeRuntime {
	if settings == nil {
		settings = map[string]string{}
	}
	return &FakeRuntime{Settings: settings}
}

// GetSetting implements host.Runtime
func (f *FakeRuntime) GetSetting(name string) (string, bool) {
	v, ok := f.Settings[name]
	return v, ok
}

// LogError implements host.Runtime
func (f *FakeRuntime) LogError(message string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, LogEntry{Message: message, Err: err})
}

// Logs returns a copy of the recorded log entries
func (f *FakeRuntime) Logs() []LogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]LogEntry(nil), f.entries...)
}
