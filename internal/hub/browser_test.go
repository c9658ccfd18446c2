package hub

import (
	"testing"

	"llmtools/pkg/types"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}
	page, info := Paginate(items, 1, 20)
	if len(page) != 20 || info.TotalPages != 3 || info.Total != 45 {
		t.Fatalf("page1 len=%d info=%+v", len(page), info)
	}
	page, info = Paginate(items, 3, 20)
	if len(page) != 5 || page[0] != 40 || info.Page != 3 {
		t.Fatalf("page3=%v info=%+v", page, info)
	}
	_, info = Paginate(items, 99, 20)
	if info.Page != 3 {
		t.Fatalf("page should clamp to last, got %d", info.Page)
	}
	page, info = Paginate([]int(nil), 0, 20)
	if len(page) != 0 || info.Page != 1 || info.TotalPages != 1 {
		t.Fatalf("empty: page=%v info=%+v", page, info)
	}
}

func TestFilters_DropsEmpty(t *testing.T) {
	f := Filters(types.HubSearchRequest{Query: " llama ", Author: "", Library: "gguf"})
	if len(f) != 2 || f["search"] != "llama" || f["library"] != "gguf" {
		t.Fatalf("filters=%v", f)
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": KindModel, "models": KindModel, "Dataset": KindDataset, "spaces": KindSpace} {
		if got, err := ParseKind(in); err != nil || got != want {
			t.Fatalf("ParseKind(%q)=%q,%v", in, got, err)
		}
	}
	if _, err := ParseKind("collection"); !IsInvalidKind(err) {
		t.Fatalf("expected invalid kind, got %v", err)
	}
}
