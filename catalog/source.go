package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"travelmaker/models"
)

// ErrBadStatus is returned for non-2xx catalog responses.
var ErrBadStatus = errors.New("catalog: unexpected response status")

// Source yields the raw catalog: a JSON array of course-like records.
type Source interface {
	Fetch(ctx context.Context) ([]models.Course, error)
	String() string
}

// HTTPSource GETs the catalog from a static URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns an HTTPSource with a bounded client timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return decode(body)
}

func (s *HTTPSource) String() string { return s.URL }

// FileSource reads the catalog from a local JSON file.
type FileSource struct {
	Path string
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return decode(body)
}

func (s *FileSource) String() string { return s.Path }

// StaticSource serves a fixed in-memory list, or Err when set.
type StaticSource struct {
	Courses []models.Course
	Err     error
}

func (s *StaticSource) Fetch(ctx context.Context) ([]models.Course, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return cloneCourses(s.Courses), nil
}

func (s *StaticSource) String() string { return "static" }

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise.
func NewSource(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return &FileSource{Path: strings.TrimPrefix(location, "file://")}
}

// decode tolerates a non-array payload by yielding an empty list.
func decode(body []byte) ([]models.Course, error) {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "[") {
		return []models.Course{}, nil
	}
	var courses []models.Course
	if err := json.Unmarshal(body, &courses); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return courses, nil
}
