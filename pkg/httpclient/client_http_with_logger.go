package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
)

// redactedParams are query parameters never written to logs.
var redactedParams = []string{"key"}

// HTTPClientTransport logs every outbound request with the logger carried by the
// request context. Bodies are not logged: upstream payloads may be binary images.
type HTTPClientTransport struct {
	Transport http.RoundTripper
}

func NewHTTPClientTransport(transport http.RoundTripper) *HTTPClientTransport {
	if transport == nil {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DisableKeepAlives:   false,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &HTTPClientTransport{Transport: transport}
}

func (t *HTTPClientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := ctxlogger.GetLogger(req.Context())
	target := redactURL(req.URL)

	logger.Debug("HTTP client request started",
		"method", req.Method,
		"url", target,
	)

	resp, err := t.Transport.RoundTrip(req)

	elapsed := time.Since(start)

	if err != nil {
		logger.Error("HTTP client request failed",
			"method", req.Method,
			"url", target,
			"error", err.Error(),
			"elapsed_time", elapsed,
		)
		return nil, err
	}

	logger.Info("HTTP client request completed",
		"method", req.Method,
		"url", target,
		"status_code", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"),
		"content_length", resp.ContentLength,
		"elapsed_time", elapsed,
	)

	return resp, nil
}

func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	cp := *u
	q := cp.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		cp.RawQuery = q.Encode()
	}

	return cp.String()
}

// NewHTTPClientWithLogging returns a client that follows redirects (the net/http
// default) and logs through HTTPClientTransport.
func NewHTTPClientWithLogging(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{
		Transport: NewHTTPClientTransport(nil),
		Timeout:   timeout,
	}
}
