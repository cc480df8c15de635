package plugin

import (
	"context"
	"errors"
	"strings"
	"sync"

	"nibblesprice/internal/host"
	"nibblesprice/internal/provider"
)

// ErrNoProviders is returned when a plugin is composed without any providers
var ErrNoProviders = errors.New("no providers registered")

// Plugin groups the providers a package exposes to the host agent runtime
type Plugin struct {
	Name        string
	Description string
	Providers   []provider.Provider
}

// New creates a new Plugin with the given providers
func New(name, description string, providers ...provider.Provider) *Plugin {
	return &Plugin{
		Name:        name,
		Description: description,
		Providers:   providers,
	}
}

// Outputs runs every provider concurrently and returns their text in
// registration order. Each provider runs in its own goroutine; providers never
// fail, so every slot is filled.
func (p *Plugin) Outputs(ctx context.Context, rt host.Runtime) []provider.Output {
	outputs := make([]provider.Output, len(p.Providers))

	var wg sync.WaitGroup
	for i, pr := range p.Providers {
		wg.Add(1)
		go func(i int, pr provider.Provider) {
			defer wg.Done()

			outputs[i] = provider.Output{
				Name: pr.Name(),
				Text: pr.Get(ctx, rt),
			}
		}(i, pr)
	}
	wg.Wait()

	return outputs
}

// Compose returns the context text of all providers joined by blank lines
func (p *Plugin) Compose(ctx context.Context, rt host.Runtime) (string, error) {
	if len(p.Providers) == 0 {
		return "", ErrNoProviders
	}

	outputs := p.Outputs(ctx, rt)
	texts := make([]string, 0, len(outputs))
	for _, out := range outputs {
		texts = append(texts, out.Text)
	}

	return strings.Join(texts, "\n\n"), nil
}
