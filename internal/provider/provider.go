package provider

import (
	"context"

	"nibblesprice/internal/host"
)

// Provider is the contract every context provider registered with the host
// agent runtime implements. A provider turns external data into text that the
// runtime hands to a language model.
type Provider interface {
	// Get builds the provider's context text. It never fails: any error is
	// logged through rt and replaced by a fixed human-readable sentence.
	Get(ctx context.Context, rt host.Runtime) string

	// Name returns a hierarchical identifier for this provider.
	// Format: {source}:{subject}:{variant}
	// Examples:
	//   - coinmarketcap:nibbles:v1
	//   - coinmarketcap:nibbles:v2
	Name() string
}
