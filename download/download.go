// SPDX-FileCopyrightText: Copyright 2025 Contributors to the Eclipse Foundation
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// DefaultTimeout is the overall request timeout applied when no custom
// HTTP client is provided.
const DefaultTimeout = 30 * time.Second

// DefaultChunkSize is the buffer size used to stream response bodies to
// disk.
const DefaultChunkSize = 8192

// Client downloads remote resources to local files.
type Client struct {
	httpClient *http.Client
	headers    http.Header
	timeout    time.Duration
	chunkSize  int
	cacheRoot  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the overall request timeout. Ignored when a custom
// HTTP client is provided via WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client. The client's own timeout
// configuration applies as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithHeader adds a header to every download request. Name and value are
// validated when the Client is constructed.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = http.Header{}
		}
		c.headers.Add(name, value)
	}
}

// WithChunkSize sets the streaming buffer size in bytes.
func WithChunkSize(size int) Option {
	return func(c *Client) {
		c.chunkSize = size
	}
}

// WithCacheRoot sets the directory DownloadToCache places files in.
// If not provided, DefaultCacheRoot is used.
func WithCacheRoot(root string) Option {
	return func(c *Client) {
		c.cacheRoot = root
	}
}

// New creates a new download client with the given options.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:   DefaultTimeout,
		chunkSize: DefaultChunkSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", c.chunkSize)
	}
	for name, values := range c.headers {
		if err := validateHeaderName(name); err != nil {
			return nil, err
		}
		for _, value := range values {
			if err := validateHeaderValue(value); err != nil {
				return nil, err
			}
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	if c.cacheRoot == "" {
		c.cacheRoot = DefaultCacheRoot()
	}

	return c, nil
}

// Download issues a GET against uri and streams the response body to
// localPath, creating any missing parent directories and overwriting an
// existing file. A non-2xx response fails with a *StatusError. A partial
// file may remain on failure; there is no cleanup, resumption or
// integrity check.
func (c *Client) Download(ctx context.Context, uri, localPath string) error {
	if err := validateDownloadURI(uri); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", uri, err)
	}
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{URI: uri, Code: resp.StatusCode}
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("creating directories for %s: %w", localPath, err)
	}
	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", localPath, err)
	}

	if err := streamChunks(out, resp.Body, c.chunkSize); err != nil {
		out.Close()
		return fmt.Errorf("streaming %s to %s: %w", uri, localPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", localPath, err)
	}
	return nil
}

// DownloadToCache downloads uri into the client's cache root, deriving
// the file name from the last element of the URI path. It returns the
// local path of the downloaded file.
func (c *Client) DownloadToCache(ctx context.Context, uri string) (string, error) {
	if err := validateDownloadURI(uri); err != nil {
		return "", err
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", uri, err)
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("cannot derive a file name from %s", uri)
	}

	localPath := filepath.Join(c.cacheRoot, name)
	if err := c.Download(ctx, uri, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// File downloads uri to localPath using a default client with a
// 30 second timeout.
func File(uri, localPath string) error {
	c, err := New()
	if err != nil {
		return err
	}
	return c.Download(context.Background(), uri, localPath)
}

// CacheRoot returns the download cache root within the given cache home
// directory. This is the injectable, testable form. For the standard XDG
// location, use DefaultCacheRoot.
func CacheRoot(cacheHome string) string {
	return filepath.Join(cacheHome, "velocitas", "downloads")
}

// DefaultCacheRoot returns the default cache root directory using XDG
// base directory conventions.
func DefaultCacheRoot() string {
	return CacheRoot(xdg.CacheHome)
}

// streamChunks copies src to dst in fixed-size chunks.
func streamChunks(dst io.Writer, src io.Reader, chunkSize int) error {
	buf := make([]byte, chunkSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return writeErr
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}
