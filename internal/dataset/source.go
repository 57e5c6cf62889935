// Bestseller Analytics - Bestselling Books Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bestseller-analytics

package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Source fetches the raw CSV bytes of the dataset.
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// DefaultMaxBytes bounds the size of a fetched dataset.
const DefaultMaxBytes int64 = 32 << 20

const userAgent = "bestseller-analytics/1.0"

// HTTPSource fetches the dataset with a GET request.
type HTTPSource struct {
	url      string
	client   *http.Client
	maxBytes int64
}

// NewHTTPSource creates an HTTP source. A zero timeout means 30 seconds and a
// non-positive maxBytes means DefaultMaxBytes.
func NewHTTPSource(rawURL string, timeout time.Duration, maxBytes int64) *HTTPSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &HTTPSource{
		url:      rawURL,
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Fetch downloads the whole body into memory, bounded by maxBytes.
func (s *HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, &StatusError{URL: s.url, StatusCode: resp.StatusCode}
	}

	body, err := readLimited(resp.Body, s.maxBytes)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *HTTPSource) String() string { return s.url }

// FileSource reads the dataset from a local path.
type FileSource struct {
	path     string
	maxBytes int64
}

// NewFileSource creates a file source.
func NewFileSource(path string, maxBytes int64) *FileSource {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &FileSource{path: path, maxBytes: maxBytes}
}

// Fetch reads the file, bounded by maxBytes.
func (s *FileSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	body, err := readLimited(f, s.maxBytes)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *FileSource) String() string { return "file://" + s.path }

// ReaderSource serves a fixed byte slice. Every Fetch returns a fresh reader.
type ReaderSource struct {
	name string
	data []byte
}

// NewReaderSource creates an in-memory source.
func NewReaderSource(name string, data []byte) *ReaderSource {
	return &ReaderSource{name: name, data: data}
}

// NewStringSource is shorthand for an in-memory source holding csv.
func NewStringSource(csv string) *ReaderSource {
	return NewReaderSource("memory", []byte(csv))
}

// Fetch returns a reader over the stored bytes.
func (s *ReaderSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *ReaderSource) String() string { return s.name }

// NewSource picks a source implementation for location: http(s) URLs use
// HTTPSource, file:// URLs and bare paths use FileSource.
func NewSource(location string, timeout time.Duration, maxBytes int64) (Source, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse dataset location: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewHTTPSource(location, timeout, maxBytes), nil
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + u.Path
		}
		return NewFileSource(path, maxBytes), nil
	case "":
		return NewFileSource(location, maxBytes), nil
	default:
		return nil, fmt.Errorf("unsupported dataset scheme %q", u.Scheme)
	}
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}
	return body, nil
}
