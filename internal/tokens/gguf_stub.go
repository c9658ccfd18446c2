//go:build !llama

package tokens

import "context"

// GGUFLoader refuses to load without the 'llama' build tag.
type GGUFLoader struct {
	ctxSize int
}

func NewGGUFLoader(ctxSize int) *GGUFLoader { return &GGUFLoader{ctxSize: ctxSize} }

func (g *GGUFLoader) Load(ctx context.Context, path string) (Tokenizer, error) {
	return nil, dependencyUnavailableError{msg: "gguf tokenizer support not built (missing 'llama' build tag)"}
}
