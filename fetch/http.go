// Copyright 2026 The go-wordtranslator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the base URL of the dictionary site.
const DefaultBaseURL = "https://www.wordreference.com"

// HTTPOptions are options for the HTTPFetcher.
type HTTPOptions struct {
	// BaseURL is the URL documents are requested from.
	BaseURL string

	// Timeout is the timeout of a single request.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// Logger receives request logs. A nil Logger discards logs.
	Logger *slog.Logger
}

// DefaultHTTPOptions is the default options for the HTTPFetcher.
var DefaultHTTPOptions = &HTTPOptions{
	BaseURL:   DefaultBaseURL,
	Timeout:   30 * time.Second,
	UserAgent: "go-wordtranslator",
}

// HTTPFetcher requests documents from the dictionary site. Requests are
// never retried.
type HTTPFetcher struct {
	client *resty.Client
	log    *slog.Logger
}

// NewHTTPFetcher returns a new HTTPFetcher. If opts is nil,
// DefaultHTTPOptions is used. Empty fields take their default values.
func NewHTTPFetcher(opts *HTTPOptions) *HTTPFetcher {
	if opts == nil {
		opts = DefaultHTTPOptions
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultHTTPOptions.BaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPOptions.Timeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultHTTPOptions.UserAgent
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html").
		SetRetryCount(0)

	return &HTTPFetcher{
		client: client,
		log:    log.With("fetcher", "http"),
	}
}

// Fetch requests the document at {BaseURL}/{from}{to}/{word}.
func (f *HTTPFetcher) Fetch(ctx context.Context, from, to, word string) (string, error) {
	if err := validate(from, to, word); err != nil {
		return "", err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"pair": from + to,
			"word": word,
		}).
		Get("/{pair}/{word}")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	f.log.Debug("fetched",
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s%s/%s", ErrNotFound, from, to, word)
	case !resp.IsSuccess():
		return "", fmt.Errorf("%w: %s: %s", ErrFetch, resp.Request.URL, resp.Status())
	}
	return string(resp.Body()), nil
}
