// Package client submits assembled requests over HTTP.
package client

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ideaspaper/xcurl/internal/constants"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
)

// Transport submits a request and returns the received response.
type Transport interface {
	Submit(ctx context.Context, request *models.Request) (*models.Response, error)
}

// Ensure HttpClient implements Transport
var _ Transport = (*HttpClient)(nil)

// ClientConfig holds client configuration
type ClientConfig struct {
	Timeout         time.Duration
	FollowRedirects bool
	InsecureSSL     bool
	Proxy           string
	ExcludeProxy    []string
}

// DefaultConfig returns a default client configuration
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:         constants.DefaultTimeout,
		FollowRedirects: true,
	}
}

// HttpClient is the net/http backed Transport.
type HttpClient struct {
	config *ClientConfig
	client *http.Client
}

// NewHttpClient creates a new HTTP client
func NewHttpClient(config *ClientConfig) (*HttpClient, error) {
	if config == nil {
		config = DefaultConfig()
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSSL,
		},
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, errors.NewConfigError("proxy", config.Proxy, err.Error())
		}
		transport.Proxy = func(req *http.Request) (*url.URL, error) {
			for _, exclude := range config.ExcludeProxy {
				if strings.EqualFold(req.URL.Host, exclude) ||
					strings.HasSuffix(strings.ToLower(req.URL.Host), "."+strings.ToLower(exclude)) {
					return nil, nil
				}
			}
			return proxyURL, nil
		}
	}

	client := &http.Client{Transport: transport}

	if config.Timeout > 0 {
		client.Timeout = config.Timeout
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &HttpClient{config: config, client: client}, nil
}

// Submit sends the request and reads the whole response body.
func (c *HttpClient) Submit(ctx context.Context, request *models.Request) (*models.Response, error) {
	var bodyReader io.Reader
	if len(request.Body) > 0 {
		bodyReader = bytes.NewReader(request.Body)
	}

	target := request.FullURL()
	req, err := http.NewRequestWithContext(ctx, request.Method, target, bodyReader)
	if err != nil {
		return nil, errors.NewRequestErrorWithURL("build", request.Method, target, err)
	}

	for _, h := range request.Headers {
		req.Header.Set(h.Key, h.Value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewRequestErrorWithURL("send", request.Method, target, err)
	}
	defer resp.Body.Close()

	var bodyBuffer bytes.Buffer
	buffered := bufio.NewReader(resp.Body)
	reader := io.Reader(buffered)

	// net/http only decompresses when it added Accept-Encoding itself.
	// A body without the gzip magic is passed through as is.
	if strings.EqualFold(resp.Header.Get(constants.HeaderContentEncoding), "gzip") && isGzip(buffered) {
		gzReader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, errors.NewRequestErrorWithURL("read response", request.Method, target, err)
		}
		reader = gzReader
		defer gzReader.Close()
	}

	if _, err := io.Copy(&bodyBuffer, reader); err != nil {
		return nil, errors.NewRequestErrorWithURL("read response", request.Method, target, err)
	}

	return models.NewResponse(resp, bodyBuffer.Bytes()), nil
}

func isGzip(r *bufio.Reader) bool {
	magic, err := r.Peek(2)
	return err == nil && magic[0] == 0x1f && magic[1] == 0x8b
}
