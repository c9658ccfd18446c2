//go:build llama

package tokens

import (
	"context"
	"errors"
	"strings"
	"sync"

	llama "github.com/go-skynet/go-llama.cpp"

	"llmtools/internal/common/fsutil"
)

// GGUFLoader opens local GGUF model files with llama.cpp and uses their
// embedded vocabulary.
type GGUFLoader struct {
	ctxSize int
}

func NewGGUFLoader(ctxSize int) *GGUFLoader { return &GGUFLoader{ctxSize: ctxSize} }

func (g *GGUFLoader) Load(ctx context.Context, path string) (Tokenizer, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model path is empty")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if !fsutil.PathExists(p) {
		return nil, loadError{model: path, err: errors.New("file not found")}
	}
	m, err := llama.New(p, llama.SetContext(g.ctxSize))
	if err != nil {
		return nil, loadError{model: path, err: err}
	}
	return &llamaTokenizer{model: m}, nil
}

// llamaTokenizer serializes calls; a llama context is not safe for
// concurrent use.
type llamaTokenizer struct {
	mu    sync.Mutex
	model *llama.LLama
}

func (t *llamaTokenizer) Count(text string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, toks, err := t.model.TokenizeString(text)
	if err != nil {
		return 0, err
	}
	return len(toks), nil
}
