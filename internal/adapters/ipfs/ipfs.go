package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/domain"
)

// Adapter is a thin client for the IPFS node HTTP API (the /api/v0
// endpoints). Every call is bounded by the configured request timeout;
// garbage collection gets its own, much longer budget.
type Adapter struct {
	baseURL  string
	client   *http.Client
	gcClient *http.Client
	logger   *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(cfg config.IPFSConfig, logger *slog.Logger) *Adapter {
	return &Adapter{
		baseURL:  cfg.APIURL,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		gcClient: &http.Client{Timeout: cfg.GCTimeout},
		logger:   logger,
	}
}

func (a *Adapter) post(ctx context.Context, client *http.Client, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	endpoint := a.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s returned %d: %s", domain.ErrUpstreamUnavailable, path, resp.StatusCode, msg)
	}
	return resp, nil
}

type pinLsResponse struct {
	Keys map[string]struct {
		Type string `json:"Type"`
	} `json:"Keys"`
}

// ListRecursivePins enumerates all recursively-pinned CIDs
func (a *Adapter) ListRecursivePins(ctx context.Context) ([]string, error) {
	query := url.Values{"type": {"recursive"}}
	resp, err := a.post(ctx, a.client, "/api/v0/pin/ls", query, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed pinLsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding pin listing: %v", domain.ErrUpstreamUnavailable, err)
	}

	cids := make([]string, 0, len(parsed.Keys))
	for cid := range parsed.Keys {
		cids = append(cids, cid)
	}
	return cids, nil
}

type filesStatResponse struct {
	CumulativeSize int64 `json:"CumulativeSize"`
}

// ObjectSize returns the cumulative DAG size behind a CID
func (a *Adapter) ObjectSize(ctx context.Context, cid string) (int64, error) {
	query := url.Values{"arg": {"/ipfs/" + cid}}
	resp, err := a.post(ctx, a.client, "/api/v0/files/stat", query, nil, "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var parsed filesStatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: decoding object stat: %v", domain.ErrUpstreamUnavailable, err)
	}
	return parsed.CumulativeSize, nil
}

// Unpin removes the recursive pin for a CID
func (a *Adapter) Unpin(ctx context.Context, cid string) error {
	query := url.Values{"arg": {cid}}
	resp, err := a.post(ctx, a.client, "/api/v0/pin/rm", query, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type repoStatResponse struct {
	RepoSize   int64 `json:"RepoSize"`
	StorageMax int64 `json:"StorageMax"`
	NumObjects int64 `json:"NumObjects"`
}

// RepoStat returns repo usage numbers from the node
func (a *Adapter) RepoStat(ctx context.Context) (*domain.RepoStats, error) {
	resp, err := a.post(ctx, a.client, "/api/v0/repo/stat", nil, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed repoStatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding repo stat: %v", domain.ErrUpstreamUnavailable, err)
	}
	return &domain.RepoStats{
		RepoSize:   parsed.RepoSize,
		StorageMax: parsed.StorageMax,
		NumObjects: parsed.NumObjects,
	}, nil
}

// RunGC triggers a repo garbage collection pass and drains the streamed
// response until the node finishes. There is no cancellation once started.
func (a *Adapter) RunGC(ctx context.Context) error {
	resp, err := a.post(ctx, a.gcClient, "/api/v0/repo/gc", nil, nil, "")
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return fmt.Errorf("%w: %v", domain.ErrGCFailed, err)
		}
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("%w: reading gc stream: %v", domain.ErrGCFailed, err)
	}
	return nil
}

type addResponse struct {
	Hash string `json:"Hash"`
}

// Add stores content on the node and returns its CID
func (a *Adapter) Add(ctx context.Context, name string, r io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	resp, err := a.post(ctx, a.client, "/api/v0/add", url.Values{"pin": {"true"}}, pr, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed addResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decoding add response: %v", domain.ErrUpstreamUnavailable, err)
	}
	if parsed.Hash == "" {
		return "", fmt.Errorf("%w: add returned no hash", domain.ErrUpstreamUnavailable)
	}
	return parsed.Hash, nil
}
