package dialog

import (
	"context"
	"errors"

	"idea-shaper-be/pkg/llm"
	"idea-shaper-be/pkg/llm/factory"
)

// fakeProvider scripts one provider's behavior for tests.
type fakeProvider struct {
	name  string
	reply string
	err   error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

func registryOf(providers ...llm.Provider) *factory.Registry {
	return factory.NewRegistryFromProviders(providers...)
}

var errProviderDown = errors.New("provider down")
