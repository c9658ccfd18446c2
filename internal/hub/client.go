// Package hub is a small client for the Hugging Face Hub HTTP API: listing
// models, datasets and spaces, listing repository files and downloading them.
package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"llmtools/internal/common/fsutil"
	"llmtools/pkg/types"
)

// DefaultEndpoint is the public hub.
const DefaultEndpoint = "https://huggingface.co"

// ClientOptions configures a Client. Zero values use defaults.
type ClientOptions struct {
	Endpoint string
	// Token is sent as a bearer token when set.
	Token      string
	HTTPClient *http.Client
	// MaxResults caps listings across pages; 0 means unlimited.
	MaxResults int
}

// Client talks to the hub API.
type Client struct {
	endpoint   string
	token      string
	http       *http.Client
	maxResults int
}

func NewClient(opts ClientOptions) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		token:      opts.Token,
		http:       opts.HTTPClient,
		maxResults: opts.MaxResults,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.http == nil {
		// No overall timeout: model downloads can take a long time.
		c.http = &http.Client{Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 60 * time.Second,
		}}
	}
	return c
}

// HTTPClient exposes the underlying client, e.g. for transport mocks.
func (c *Client) HTTPClient() *http.Client { return c.http }

// Endpoint is the hub base URL.
func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "llmtools")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := gjson.GetBytes(b, "error").String()
		if msg == "" {
			msg = strings.TrimSpace(string(b))
		}
		return nil, statusError{url: rawURL, status: resp.StatusCode, body: msg}
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string) (gjson.Result, http.Header, error) {
	resp, err := c.do(ctx, rawURL)
	if err != nil {
		return gjson.Result{}, nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, nil, err
	}
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, nil, fmt.Errorf("hub %s: invalid JSON response", rawURL)
	}
	return gjson.ParseBytes(b), resp.Header, nil
}

// filterQuery translates the flat filter mapping to hub query parameters.
// task, library and trained_dataset become "filter" tags.
func filterQuery(filters map[string]string) url.Values {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		v := strings.TrimSpace(filters[k])
		if v == "" {
			continue
		}
		switch k {
		case "task", "library":
			q.Add("filter", v)
		case "trained_dataset":
			q.Add("filter", "dataset:"+v)
		default:
			q.Set(k, v)
		}
	}
	return q
}

// Search lists repositories of a kind matching filters, following the
// hub's Link pagination until exhausted or MaxResults is reached.
func (c *Client) Search(ctx context.Context, kind Kind, filters map[string]string) ([]types.HubRepo, error) {
	st, ok := strategies[kind]
	if !ok {
		return nil, invalidKindError{kind: string(kind)}
	}
	next := c.endpoint + st.apiPath
	if q := filterQuery(filters).Encode(); q != "" {
		next += "?" + q
	}
	out := []types.HubRepo{}
	for next != "" {
		res, hdr, err := c.getJSON(ctx, next)
		if err != nil {
			return nil, err
		}
		if !res.IsArray() {
			return nil, fmt.Errorf("hub %s: expected a JSON array", next)
		}
		res.ForEach(func(_, v gjson.Result) bool {
			if repo := st.decode(v); repo.ID != "" {
				out = append(out, repo)
			}
			return c.maxResults <= 0 || len(out) < c.maxResults
		})
		if c.maxResults > 0 && len(out) >= c.maxResults {
			break
		}
		next = nextLink(next, hdr.Get("Link"))
	}
	return out, nil
}

// nextLink extracts the rel="next" target from a Link header, resolved
// against the current URL.
func nextLink(current, header string) string {
	for _, part := range strings.Split(header, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(segs[0]), "<>")
		for _, p := range segs[1:] {
			if strings.ReplaceAll(strings.TrimSpace(p), " ", "") == `rel="next"` {
				base, err := url.Parse(current)
				if err != nil {
					return target
				}
				ref, err := url.Parse(target)
				if err != nil {
					return ""
				}
				return base.ResolveReference(ref).String()
			}
		}
	}
	return ""
}

func validRepoID(repoID string) error {
	if repoID == "" {
		return invalidInputError{msg: "repository id is required"}
	}
	for _, seg := range strings.Split(repoID, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return invalidInputError{msg: "invalid repository id: " + repoID}
		}
	}
	return nil
}

// ListFiles returns the file paths in a repository.
func (c *Client) ListFiles(ctx context.Context, kind Kind, repoID string) ([]string, error) {
	st, ok := strategies[kind]
	if !ok {
		return nil, invalidKindError{kind: string(kind)}
	}
	if err := validRepoID(repoID); err != nil {
		return nil, err
	}
	res, _, err := c.getJSON(ctx, c.endpoint+st.apiPath+"/"+repoID)
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, f := range res.Get("siblings.#.rfilename").Array() {
		files = append(files, f.String())
	}
	return files, nil
}

func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// DownloadFile fetches one file into dir/<repoID>/<filename> and returns
// the written path. Parent directories are created as needed.
func (c *Client) DownloadFile(ctx context.Context, kind Kind, repoID, filename, dir string) (string, error) {
	st, ok := strategies[kind]
	if !ok {
		return "", invalidKindError{kind: string(kind)}
	}
	if err := validRepoID(repoID); err != nil {
		return "", err
	}
	repoDir, err := fsutil.SafeJoin(dir, repoID)
	if err != nil {
		return "", invalidInputError{msg: err.Error()}
	}
	dest, err := fsutil.SafeJoin(repoDir, filename)
	if err != nil {
		return "", invalidInputError{msg: err.Error()}
	}
	u := c.endpoint + "/" + st.resolvePath + repoID + "/resolve/main/" + escapePath(filename)
	resp, err := c.do(ctx, u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if _, err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return "", err
	}
	if _, err := fsutil.WriteFileAtomic(dest, resp.Body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}

// DownloadRepo fetches every file of a repository into dir/<repoID> and
// returns the repository directory and the written paths. The first
// failure aborts the snapshot.
func (c *Client) DownloadRepo(ctx context.Context, kind Kind, repoID, dir string) (string, []string, error) {
	files, err := c.ListFiles(ctx, kind, repoID)
	if err != nil {
		return "", nil, err
	}
	repoDir, err := fsutil.SafeJoin(dir, repoID)
	if err != nil {
		return "", nil, invalidInputError{msg: err.Error()}
	}
	written := make([]string, 0, len(files))
	for _, f := range files {
		p, err := c.DownloadFile(ctx, kind, repoID, f, dir)
		if err != nil {
			return repoDir, written, fmt.Errorf("download %s: %w", f, err)
		}
		written = append(written, p)
	}
	return repoDir, written, nil
}
