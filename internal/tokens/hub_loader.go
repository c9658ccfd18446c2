package tokens

import (
	"context"
	"os"
	"strings"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"

	"llmtools/internal/hub"
)

// TokenizerFile is the hub file holding a fast-tokenizer definition.
const TokenizerFile = "tokenizer.json"

// HubLoader fetches tokenizer.json for a hub model into a cache directory
// and builds a tokenizer from it.
type HubLoader struct {
	client   *hub.Client
	cacheDir string
	open     func(path string) (Tokenizer, error)
}

func NewHubLoader(c *hub.Client, cacheDir string) *HubLoader {
	return &HubLoader{client: c, cacheDir: cacheDir, open: openTokenizerJSON}
}

func (l *HubLoader) Load(ctx context.Context, model string) (Tokenizer, error) {
	if err := os.MkdirAll(l.cacheDir, 0o755); err != nil {
		return nil, loadError{model: model, err: err}
	}
	p, err := l.client.DownloadFile(ctx, hub.KindModel, model, TokenizerFile, l.cacheDir)
	if err != nil {
		return nil, loadError{model: model, err: err}
	}
	tk, err := l.open(p)
	if err != nil {
		return nil, loadError{model: model, err: err}
	}
	return tk, nil
}

type hfTokenizer struct{ tk *tokenizer.Tokenizer }

func openTokenizerJSON(path string) (Tokenizer, error) {
	tk, err := pretrained.FromFile(path)
	if err != nil {
		return nil, err
	}
	return hfTokenizer{tk: tk}, nil
}

// Count encodes without special tokens so BOS/EOS are not counted.
func (h hfTokenizer) Count(text string) (int, error) {
	enc, err := h.tk.EncodeSingle(text, false)
	if err != nil {
		return 0, err
	}
	return len(enc.Tokens), nil
}

// RouterLoader sends local .gguf paths to the GGUF loader and everything
// else to the hub.
type RouterLoader struct {
	Hub  Loader
	GGUF Loader
}

func (r RouterLoader) Load(ctx context.Context, model string) (Tokenizer, error) {
	if strings.HasSuffix(strings.ToLower(model), ".gguf") {
		if r.GGUF == nil {
			return nil, dependencyUnavailableError{msg: "gguf tokenizer not configured"}
		}
		return r.GGUF.Load(ctx, model)
	}
	return r.Hub.Load(ctx, model)
}
