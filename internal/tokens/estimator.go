// Package tokens estimates prompt token counts with a model's own tokenizer.
package tokens

import (
	"context"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"llmtools/pkg/types"
)

// Tokenizer counts tokens in text.
type Tokenizer interface {
	Count(text string) (int, error)
}

// Loader resolves a model identifier to a Tokenizer.
type Loader interface {
	Load(ctx context.Context, model string) (Tokenizer, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, model string) (Tokenizer, error)

func (f LoaderFunc) Load(ctx context.Context, model string) (Tokenizer, error) { return f(ctx, model) }

// Estimator caches loaded tokenizers by model identifier for the life of
// the process. Failed loads are not cached.
type Estimator struct {
	loader Loader
	mu     sync.Mutex
	cache  map[string]Tokenizer
}

func NewEstimator(l Loader) *Estimator {
	return &Estimator{loader: l, cache: map[string]Tokenizer{}}
}

var newlines = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Clean replaces each newline with a single space.
func Clean(text string) string { return newlines.Replace(text) }

// Estimate counts tokens in the newline-cleaned text with the model's
// tokenizer. Lengths are in characters.
func (e *Estimator) Estimate(ctx context.Context, model, text string) (types.TokenResponse, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return types.TokenResponse{}, invalidInputError{msg: "model name is required"}
	}
	if text == "" {
		return types.TokenResponse{}, invalidInputError{msg: "text is required"}
	}
	tk, err := e.tokenizer(ctx, model)
	if err != nil {
		return types.TokenResponse{}, err
	}
	cleaned := Clean(text)
	n, err := tk.Count(cleaned)
	if err != nil {
		return types.TokenResponse{}, loadError{model: model, err: err}
	}
	return types.TokenResponse{
		Model:          model,
		TokenCount:     n,
		OriginalLength: utf8.RuneCountInString(text),
		CleanedLength:  utf8.RuneCountInString(cleaned),
	}, nil
}

func (e *Estimator) tokenizer(ctx context.Context, model string) (Tokenizer, error) {
	e.mu.Lock()
	tk, ok := e.cache[model]
	e.mu.Unlock()
	if ok {
		return tk, nil
	}
	tk, err := e.loader.Load(ctx, model)
	if err != nil {
		if IsDependencyUnavailable(err) || IsLoadFailed(err) {
			return nil, err
		}
		return nil, loadError{model: model, err: err}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[model]; ok {
		return cached, nil
	}
	e.cache[model] = tk
	return tk, nil
}

// Cached lists model identifiers with a loaded tokenizer.
func (e *Estimator) Cached() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.cache))
	for k := range e.cache {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
