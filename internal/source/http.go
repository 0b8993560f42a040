package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// httpTimeout bounds a single source fetch.
const httpTimeout = 30 * time.Second

// HTTPRecipeSource fetches a recipe CSV from a URL. The body uses the
// same format as the file source.
type HTTPRecipeSource struct {
	URL    string
	client *resty.Client
}

// NewHTTPRecipeSource returns a source fetching from the given URL.
func NewHTTPRecipeSource(url string) *HTTPRecipeSource {
	return &HTTPRecipeSource{
		URL:    url,
		client: resty.New().SetTimeout(httpTimeout),
	}
}

func (s *HTTPRecipeSource) Records() ([][]string, error) {
	body, err := fetch(s.client, s.URL)
	if err != nil {
		return nil, err
	}
	return parseRecipeRecords(strings.NewReader(body))
}

// HTTPCatalogSource fetches an ingredient catalog from a URL, one name
// per line.
type HTTPCatalogSource struct {
	URL    string
	client *resty.Client
}

// NewHTTPCatalogSource returns a source fetching from the given URL.
func NewHTTPCatalogSource(url string) *HTTPCatalogSource {
	return &HTTPCatalogSource{
		URL:    url,
		client: resty.New().SetTimeout(httpTimeout),
	}
}

func (s *HTTPCatalogSource) Names() ([]string, error) {
	body, err := fetch(s.client, s.URL)
	if err != nil {
		return nil, err
	}
	return parseCatalogNames(strings.NewReader(body))
}

func fetch(client *resty.Client, url string) (string, error) {
	resp, err := client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching %s: status %s", url, resp.Status())
	}
	return resp.String(), nil
}
