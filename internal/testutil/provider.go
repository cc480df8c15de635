package testutil

import (
	"context"

	"nibblesprice/internal/host"
	"nibblesprice/internal/provider"
)

// MockProvider is a mock implementation of the Provider interface for testing
type MockProvider struct {
	GetFunc  func(ctx context.Context, rt host.Runtime) string
	NameFunc func() string
}

// Get implements the Provider interface
func (m *MockProvider) Get(ctx context.Context, rt host.Runtime) string {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, rt)
	}
	return ""
}

// Name implements the Provider interface
func (m *MockProvider) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock:provider"
}

// NewMockProvider creates a simple mock provider returning fixed text
func NewMockProvider(name, text string) provider.Provider {
	return &MockProvider{
		GetFunc: func(ctx context.Context, rt host.Runtime) string {
			return text
		},
		NameFunc: func() string {
			return name
		},
	}
}
