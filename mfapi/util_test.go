package mfapi

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// trackedBody records whether it has been closed.
type trackedBody struct {
	io.Reader
	closed bool
}

func (b *trackedBody) Close() error {
	b.closed = true
	return nil
}

// stubTransport serves one canned response for any request.
type stubTransport struct {
	resp *http.Response
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.resp.Request = req
	return t.resp, nil
}

func stubClient(status int, body *trackedBody) *http.Client {
	resp := &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       body,
		Header:     make(http.Header),
	}
	return &http.Client{Transport: &stubTransport{resp: resp}}
}

func TestJwgetClosesBody(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader(`{"ok": true}`)}
	var data map[string]bool
	if err := jwget(stubClient(200, body), "http://example.test/mf", &data); err != nil {
		t.Fatalf("jwget() failed: %v", err)
	}
	if !body.closed {
		t.Error("response body not closed after a successful GET")
	}
	if !data["ok"] {
		t.Error("response body was not decoded")
	}
}

func TestJwgetClosesBodyOnHTTPError(t *testing.T) {
	body := &trackedBody{Reader: strings.NewReader("server error")}
	var data any
	if err := jwget(stubClient(500, body), "http://example.test/mf", &data); err == nil {
		t.Fatal("jwget() on a 500 succeeded, want error")
	}
	if !body.closed {
		t.Error("response body not closed on the error path")
	}
}
