package appconfig

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/goccy/go-json"
)

//go:generate mockgen -source=source.go -destination=../mock/config_source_mock.go -package=mock

// Source fetches the raw runtime configuration document.
type Source interface {
	Fetch(ctx context.Context) (map[string]any, error)
}

// NewSource returns an [HTTPSource] for http(s) locations and a [FileSource]
// for everything else.
func NewSource(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}

	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location), nil
	}

	return NewFileSource(location), nil
}

// HTTPSource fetches the document over HTTP. Every request carries a
// "t=<unix millis>" query parameter and Cache-Control: no-cache so that
// intermediaries never serve a stale copy.
type HTTPSource struct {
	client *utils.HTTPClient
	url    string
	now    func() time.Time
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		client: utils.NewHTTPClient(),
		url:    url,
		now:    time.Now,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (map[string]any, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Cache-Control", "no-cache").
		SetQueryParam("t", strconv.FormatInt(s.now().UnixMilli(), 10)).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("config request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	return decodeDocument(resp.Body())
}

// FileSource reads the document from a local file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decodeDocument(data)
}

func decodeDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, ErrInvalidDocument
	}
	return doc, nil
}
