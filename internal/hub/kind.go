package hub

import (
	"strings"

	"github.com/tidwall/gjson"

	"llmtools/pkg/types"
)

// Kind selects which hub collection a call targets.
type Kind string

const (
	KindModel   Kind = "model"
	KindDataset Kind = "dataset"
	KindSpace   Kind = "space"
)

// Kinds lists the supported kinds in display order.
var Kinds = []Kind{KindModel, KindDataset, KindSpace}

// strategy holds the per-kind endpoints and record decoding.
type strategy struct {
	apiPath     string // listing and repo info, e.g. /api/models
	resolvePath string // prefix for file downloads, "" for models
	decode      func(gjson.Result) types.HubRepo
}

var strategies = map[Kind]strategy{
	KindModel: {
		apiPath: "/api/models",
		decode: func(r gjson.Result) types.HubRepo {
			repo := decodeCommon(r)
			if repo.ID == "" {
				repo.ID = r.Get("modelId").String()
			}
			repo.Description = r.Get("cardData.description").String()
			return repo
		},
	},
	KindDataset: {
		apiPath:     "/api/datasets",
		resolvePath: "datasets/",
		decode: func(r gjson.Result) types.HubRepo {
			repo := decodeCommon(r)
			repo.Description = strings.TrimSpace(r.Get("description").String())
			return repo
		},
	},
	KindSpace: {
		apiPath:     "/api/spaces",
		resolvePath: "spaces/",
		decode: func(r gjson.Result) types.HubRepo {
			repo := decodeCommon(r)
			repo.Description = r.Get("cardData.short_description").String()
			return repo
		},
	},
}

func decodeCommon(r gjson.Result) types.HubRepo {
	id := r.Get("id").String()
	author := r.Get("author").String()
	if author == "" {
		if i := strings.IndexByte(id, '/'); i > 0 {
			author = id[:i]
		}
	}
	return types.HubRepo{
		ID:        id,
		Author:    author,
		Downloads: r.Get("downloads").Int(),
		Likes:     r.Get("likes").Int(),
	}
}

// ParseKind accepts singular or plural kind names; empty means model.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "model", "models":
		return KindModel, nil
	case "dataset", "datasets":
		return KindDataset, nil
	case "space", "spaces":
		return KindSpace, nil
	}
	return "", invalidKindError{kind: s}
}
