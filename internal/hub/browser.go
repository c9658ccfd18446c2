package hub

import (
	"context"
	"strings"

	"llmtools/internal/common/fsutil"
	"llmtools/pkg/types"
)

// DefaultPageSize is the number of results per page.
const DefaultPageSize = 20

// PageInfo describes one page of a client-side paginated listing.
type PageInfo struct {
	Page       int
	TotalPages int
	Total      int
}

// Paginate returns the 1-based page of items. page is clamped to the
// valid range; an empty list has one empty page.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return items[start:end], PageInfo{Page: page, TotalPages: pages, Total: total}
}

// Filters builds the flat filter mapping for a search request.
func Filters(req types.HubSearchRequest) map[string]string {
	m := map[string]string{}
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			m[k] = v
		}
	}
	set("search", req.Query)
	set("author", req.Author)
	set("task", req.Task)
	set("library", req.Library)
	set("trained_dataset", req.TrainedDataset)
	return m
}

// Browser is the hub front-end: search with pagination, file listing and
// downloads into a default directory.
type Browser struct {
	client      *Client
	pageSize    int
	downloadDir string
}

func NewBrowser(c *Client, pageSize int, downloadDir string) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{client: c, pageSize: pageSize, downloadDir: downloadDir}
}

// DownloadDir is the default download target.
func (b *Browser) DownloadDir() string { return b.downloadDir }

// PageSize is the number of results per page.
func (b *Browser) PageSize() int { return b.pageSize }

// SearchAll fetches the full result set for a request.
func (b *Browser) SearchAll(ctx context.Context, req types.HubSearchRequest) ([]types.HubRepo, error) {
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	return b.client.Search(ctx, kind, Filters(req))
}

// Search fetches the full result set and returns the requested page.
func (b *Browser) Search(ctx context.Context, req types.HubSearchRequest) (types.HubSearchResponse, error) {
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return types.HubSearchResponse{}, err
	}
	all, err := b.client.Search(ctx, kind, Filters(req))
	if err != nil {
		return types.HubSearchResponse{}, err
	}
	return b.Page(kind, all, req.Page), nil
}

// Page slices an already fetched result set.
func (b *Browser) Page(kind Kind, all []types.HubRepo, page int) types.HubSearchResponse {
	items, info := Paginate(all, page, b.pageSize)
	return types.HubSearchResponse{
		Kind:       string(kind),
		Page:       info.Page,
		TotalPages: info.TotalPages,
		Total:      info.Total,
		Results:    items,
	}
}

func (b *Browser) ListFiles(ctx context.Context, kind, repoID string) (types.HubFilesResponse, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return types.HubFilesResponse{}, err
	}
	files, err := b.client.ListFiles(ctx, k, repoID)
	if err != nil {
		return types.HubFilesResponse{}, err
	}
	return types.HubFilesResponse{RepoID: repoID, Files: files}, nil
}

// Download fetches a single file, or the whole repository when
// req.Filename is empty. The output directory is created if absent.
func (b *Browser) Download(ctx context.Context, req types.HubDownloadRequest) (types.HubDownloadResponse, error) {
	var resp types.HubDownloadResponse
	kind, err := ParseKind(req.Kind)
	if err != nil {
		return resp, err
	}
	dir := req.OutputDir
	if dir == "" {
		dir = b.downloadDir
	}
	if dir == "" {
		return resp, invalidInputError{msg: "download directory is required"}
	}
	if dir, err = fsutil.ExpandHome(dir); err != nil {
		return resp, err
	}
	if resp.CreatedDir, err = fsutil.EnsureDir(dir); err != nil {
		return resp, err
	}
	if req.Filename != "" {
		p, err := b.client.DownloadFile(ctx, kind, req.RepoID, req.Filename, dir)
		if err != nil {
			return resp, err
		}
		resp.Path, resp.Files = p, []string{p}
		return resp, nil
	}
	repoDir, files, err := b.client.DownloadRepo(ctx, kind, req.RepoID, dir)
	resp.Path, resp.Files = repoDir, files
	return resp, err
}
