package executor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ideaspaper/xcurl/pkg/client"
	"github.com/ideaspaper/xcurl/pkg/errors"
	"github.com/ideaspaper/xcurl/pkg/models"
	"github.com/ideaspaper/xcurl/pkg/output"
	"github.com/ideaspaper/xcurl/pkg/params"
)

func okResponse(body string) *models.Response {
	return &models.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Proto:      "HTTP/1.1",
		Headers:    http.Header{"Content-Type": {"application/json"}},
		Body:       []byte(body),
	}
}

func kvString(kvs []models.KV) string {
	parts := make([]string, len(kvs))
	for i, kv := range kvs {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, "&")
}

func TestExecuteUnsupportedEncodingBeforeTransport(t *testing.T) {
	mock := client.NewMockClient().WithResponse(okResponse("{}"))
	e := New(mock, output.PlainRenderer{}, Options{Method: "POST"})

	_, err := e.Execute(context.Background(), "example.test/items?x=1", []string{"ct:text/plain", "name=bob", "tag==urgent"})
	if !errors.Is(err, errors.ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "text/plain") {
		t.Errorf("error %q should name text/plain", err.Error())
	}
	if mock.RequestCount() != 0 {
		t.Errorf("transport called %d times, want 0", mock.RequestCount())
	}
}

func TestExecuteSendsAssembledRequest(t *testing.T) {
	mock := client.NewMockClient().WithResponse(okResponse(`{"id":7}`))
	e := New(mock, output.PlainRenderer{}, Options{Method: "post"})

	out, err := e.Execute(context.Background(), "Example.TEST/items?x=1", []string{"name=bob", "tag==urgent", "X-Trace:abc"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	req := mock.LastRequest()
	if req == nil {
		t.Fatal("no request recorded")
	}
	if req.Method != "POST" {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.URL != "http://example.test/items" {
		t.Errorf("URL = %q", req.URL)
	}
	if got := kvString(req.Query); got != "x=1&tag=urgent" {
		t.Errorf("Query = %q, want x=1&tag=urgent", got)
	}
	if got := kvString(req.Headers); got != "x-trace=abc&content-type=application/json" {
		t.Errorf("Headers = %q", got)
	}
	if string(req.Body) != `{"name":"bob"}` {
		t.Errorf("Body = %q", req.Body)
	}

	if out.Stdout != "{\n  \"id\": 7\n}" {
		t.Errorf("Stdout = %q", out.Stdout)
	}
	if !strings.HasPrefix(out.Stderr, "HTTP/1.1 200 OK\n") {
		t.Errorf("Stderr = %q", out.Stderr)
	}
}

func TestExecuteOffline(t *testing.T) {
	mock := client.NewMockClient()
	e := New(mock, output.PlainRenderer{}, Options{Method: "POST", Offline: true})

	out, err := e.Execute(context.Background(), "example.test/items?x=1", []string{"name=bob", "tag==urgent"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if mock.RequestCount() != 0 {
		t.Error("offline mode must not call the transport")
	}
	if out.Stdout != "" {
		t.Errorf("Stdout = %q, want empty", out.Stdout)
	}

	want := "POST /items?x=1&tag=urgent HTTP/1.1\n" +
		"content-type: application/json\n" +
		"{\n  \"name\": \"bob\"\n}\n"
	if out.Stderr != want {
		t.Errorf("Stderr = %q, want %q", out.Stderr, want)
	}

	nilTransport := New(nil, output.PlainRenderer{}, Options{Offline: true})
	if _, err := nilTransport.Execute(context.Background(), "x.test", nil); err != nil {
		t.Errorf("offline mode should not need a transport, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		url         string
		tokens      []string
		wantQuery   string
		wantHeaders string
		wantBody    string
	}{
		{
			name:        "get defaults to json header and no body",
			url:         "x.test",
			wantHeaders: "content-type=application/json",
		},
		{
			name:        "form flag",
			opts:        Options{Method: "POST", Form: true},
			url:         "x.test",
			tokens:      []string{"a=1", "b=2", "a=3"},
			wantHeaders: "content-type=application/x-www-form-urlencoded",
			wantBody:    "a=1&b=2&a=3",
		},
		{
			name:        "multipart flag",
			opts:        Options{Method: "POST", Multipart: true},
			url:         "x.test",
			tokens:      []string{"tags[1]=x"},
			wantHeaders: "content-type=multipart/form-data",
			wantBody:    "tags[1]=x",
		},
		{
			name:        "explicit header beats form flag",
			opts:        Options{Method: "POST", Form: true},
			url:         "x.test",
			tokens:      []string{"Content-Type:application/json", "a=1"},
			wantHeaders: "content-type=application/json",
			wantBody:    `{"a":"1"}`,
		},
		{
			name:        "explicit query overrides url query in place",
			url:         "x.test/?a=1&b=2",
			tokens:      []string{"a==9", "c==3"},
			wantQuery:   "a=9&b=2&c=3",
			wantHeaders: "content-type=application/json",
		},
		{
			name: "defaults are lowest precedence",
			opts: Options{Defaults: params.Defaults{
				Headers: []models.KV{{Key: "user-agent", Value: "xcurl-cli"}, {Key: "x-token", Value: "abc"}},
				Query:   []models.KV{{Key: "page", Value: "1"}, {Key: "size", Value: "10"}},
				Body:    []models.KV{{Key: "from", Value: "profile"}},
			}},
			url:         "x.test/?page=2",
			tokens:      []string{"x-token:override", "size==20", "name=bob"},
			wantQuery:   "page=2&size=20",
			wantHeaders: "user-agent=xcurl-cli&x-token=override&content-type=application/json",
			wantBody:    `{"from":"profile","name":"bob"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := New(nil, output.PlainRenderer{}, tt.opts).Build(tt.url, tt.tokens)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := kvString(req.Query); got != tt.wantQuery {
				t.Errorf("Query = %q, want %q", got, tt.wantQuery)
			}
			if got := kvString(req.Headers); got != tt.wantHeaders {
				t.Errorf("Headers = %q, want %q", got, tt.wantHeaders)
			}
			if string(req.Body) != tt.wantBody {
				t.Errorf("Body = %q, want %q", req.Body, tt.wantBody)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		tokens []string
		want   error
	}{
		{"invalid token", "x.test", []string{"nodelimiter"}, errors.ErrInvalidParameter},
		{"empty key", "x.test", []string{"=v"}, errors.ErrInvalidParameter},
		{"bad scheme", "ftp://x.test", nil, errors.ErrInvalidURL},
		{"unknown content type with body", "x.test", []string{"ct:application/vnd.custom", "a=1"}, errors.ErrUnsupportedEncoding},
		{"xml body", "x.test", []string{"ct:application/xml", "a=1"}, errors.ErrUnsupportedEncoding},
		{"unknown content type without body", "x.test", []string{"ct:application/vnd.custom"}, errors.ErrUnsupportedEncoding},
		{"text content type without body", "x.test", []string{"ct:text/plain"}, errors.ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, output.PlainRenderer{}, Options{}).Build(tt.url, tt.tokens)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExecuteTransportErrors(t *testing.T) {
	t.Run("plain error is reported as transport error", func(t *testing.T) {
		mock := client.NewMockClient().WithError(fmt.Errorf("connection refused"))
		_, err := New(mock, output.PlainRenderer{}, Options{}).Execute(context.Background(), "x.test", nil)
		if !errors.Is(err, errors.ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mock := client.NewMockClient().WithResponse(okResponse("{}"))
		_, err := New(mock, output.PlainRenderer{}, Options{}).Execute(ctx, "x.test", nil)
		if !errors.Is(err, errors.ErrCanceled) {
			t.Errorf("expected ErrCanceled, got %v", err)
		}
	})

	t.Run("malformed json response", func(t *testing.T) {
		mock := client.NewMockClient().WithResponse(okResponse("{broken"))
		_, err := New(mock, output.PlainRenderer{}, Options{}).Execute(context.Background(), "x.test", nil)
		if !errors.Is(err, errors.ErrMalformedBody) {
			t.Errorf("expected ErrMalformedBody, got %v", err)
		}
	})
}

func TestLogFunc(t *testing.T) {
	var logs []string
	mock := client.NewMockClient().WithResponse(okResponse("{}"))
	e := New(mock, output.PlainRenderer{}, Options{
		Form:    true,
		LogFunc: func(format string, args ...any) { logs = append(logs, fmt.Sprintf(format, args...)) },
	})

	if _, err := e.Execute(context.Background(), "x.test", []string{"ct:application/json"}); err != nil {
		t.Fatal(err)
	}
	joined := strings.Join(logs, "\n")
	for _, want := range []string{"overrides the form flags", "GET http://x.test/", "HTTP/1.1 200 OK"} {
		if !strings.Contains(joined, want) {
			t.Errorf("logs missing %q:\n%s", want, joined)
		}
	}
}
