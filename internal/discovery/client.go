package discovery

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/schema"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/ggriffiniii/google-apis/apigen/desc"
)

// DefaultDirectoryURL is the public Discovery directory.
const DefaultDirectoryURL = "https://www.googleapis.com/discovery/v1/apis"

// Discovery documents for the largest APIs are a few megabytes.
const maxDocumentSize = 64 << 20

// Options configures a Client.
type Options struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// RetryWaitMin and RetryWaitMax bound the backoff between attempts.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// DirectoryURL is the directory endpoint used by ListDirectory and Lookup.
	DirectoryURL string

	// Transport overrides the pooled transport.
	Transport http.RoundTripper

	Logger *slog.Logger
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		MaxRetries:   3,
		RetryWaitMin: 1 * time.Second,
		RetryWaitMax: 10 * time.Second,
		Timeout:      30 * time.Second,
		DirectoryURL: DefaultDirectoryURL,
	}
}

// Client fetches Discovery documents over HTTP.
type Client struct {
	http         *retryablehttp.Client
	directoryURL string
	encoder      *schema.Encoder
}

// NewClient returns a client that retries connection errors and 5xx
// responses. Zero durations and an empty DirectoryURL take the defaults.
func NewClient(opts Options) *Client {
	def := DefaultOptions()
	if opts.RetryWaitMin == 0 {
		opts.RetryWaitMin = def.RetryWaitMin
	}
	if opts.RetryWaitMax == 0 {
		opts.RetryWaitMax = def.RetryWaitMax
	}
	if opts.Timeout == 0 {
		opts.Timeout = def.Timeout
	}
	if opts.DirectoryURL == "" {
		opts.DirectoryURL = def.DirectoryURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Transport = cleanhttp.DefaultPooledTransport()
	if opts.Transport != nil {
		rc.HTTPClient.Transport = opts.Transport
	}
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.MaxRetries
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.Logger = retryablehttp.LeveledLogger(leveledSlog{inner: logger.With("subsystem", "discovery")})
	rc.CheckRetry = retryPolicy

	enc := schema.NewEncoder()
	enc.SetAliasTag("url")
	return &Client{http: rc, directoryURL: opts.DirectoryURL, encoder: enc}
}

// retryPolicy does not retry 429 responses; the caller decides how to back off.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil && resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Fetch downloads and parses the Discovery document at rawURL.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	data, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Load reads a service description from source: an http(s) URL, an API
// reference such as "drive:v3" resolved through the directory, or a file path.
func (c *Client) Load(ctx context.Context, source string) (*desc.ServiceDescription, error) {
	data, err := c.read(ctx, source)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", source)
	}
	d, err := doc.ServiceDescription()
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", source)
	}
	return d, nil
}

func (c *Client) read(ctx context.Context, source string) ([]byte, error) {
	if isURL(source) {
		return c.get(ctx, source)
	}
	if name, version, ok := APIRef(source); ok {
		if _, err := os.Stat(source); err != nil {
			item, err := c.Lookup(ctx, name, version)
			if err != nil {
				return nil, err
			}
			return c.get(ctx, item.DiscoveryRestURL)
		}
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrap(err, "read description")
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", rawURL)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", rawURL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.WithHintf(errors.Newf("GET %s: %s", rawURL, resp.Status),
			"check that the API name and version exist in the directory")
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", rawURL)
	}
	return data, nil
}

// IsRemote reports whether source is fetched over HTTP: a URL or an API reference.
func IsRemote(source string) bool {
	if isURL(source) {
		return true
	}
	_, _, ok := APIRef(source)
	return ok
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// APIRef splits a "name:version" reference. It reports false for anything
// that looks like a path or URL.
func APIRef(source string) (name, version string, ok bool) {
	name, version, ok = strings.Cut(source, ":")
	if !ok || len(name) < 2 || version == "" || strings.ContainsAny(source, `/\`) {
		return "", "", false
	}
	for _, part := range []string{name, version} {
		for _, r := range part {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '.' || r == '_' || r == '-') {
				return "", "", false
			}
		}
	}
	return name, version, true
}
