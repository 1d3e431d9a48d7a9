package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"

	"galeria/backend/internal/config"
	"galeria/backend/internal/network"
)

const defaultGoogleWebURL = "https://translate.googleapis.com"

// GoogleWebTranslator calls the keyless translate_a/single endpoint used by
// the Google Translate web widget (client=gtx).
type GoogleWebTranslator struct {
	baseURL    string
	timeout    time.Duration
	browserTLS bool
	clients    *network.ClientFactory
}

// NewGoogleWebTranslator creates the translator. With browserTLS the request
// is sent through an azuretls session carrying a Chrome fingerprint.
func NewGoogleWebTranslator(baseURL string, timeout time.Duration, browserTLS bool, clients *network.ClientFactory) *GoogleWebTranslator {
	if baseURL == "" {
		baseURL = defaultGoogleWebURL
	}
	return &GoogleWebTranslator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		browserTLS: browserTLS,
		clients:    clients,
	}
}

func (t *GoogleWebTranslator) Name() string {
	return ProviderGoogleWeb
}

func (t *GoogleWebTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceLang)
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)
	endpoint := t.baseURL + "/translate_a/single?" + q.Encode()

	var (
		body   []byte
		status int
		err    error
	)
	if t.browserTLS {
		body, status, err = t.getWithBrowser(ctx, endpoint)
	} else {
		body, status, err = t.get(ctx, endpoint)
	}
	if err != nil {
		return "", &ProviderError{Provider: ProviderGoogleWeb, Err: err}
	}
	if status != http.StatusOK {
		return "", &ProviderError{Provider: ProviderGoogleWeb, StatusCode: status}
	}
	return parseGTXResponse(body)
}

func (t *GoogleWebTranslator) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.ChromeUserAgent)

	resp, err := t.clients.NewHTTPClient(ctx, t.timeout).Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (t *GoogleWebTranslator) getWithBrowser(ctx context.Context, endpoint string) ([]byte, int, error) {
	session := t.clients.NewAzureSession(ctx, t.timeout)
	defer session.Close()

	req := &azuretls.Request{
		Method: http.MethodGet,
		Url:    endpoint,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", "*/*"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"user-agent", config.ChromeUserAgent},
		},
	}
	req.SetContext(ctx)

	resp, err := session.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.StatusCode, nil
}

// parseGTXResponse joins the first element of every segment in the first
// array of [[["translated","source",...],...],...].
func parseGTXResponse(body []byte) (string, error) {
	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(root) == 0 {
		return "", fmt.Errorf("%w: empty root array", ErrMalformed)
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(root[0], &segments); err != nil {
		return "", fmt.Errorf("%w: segments: %v", ErrMalformed, err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(parts[0], &piece); err != nil {
			continue
		}
		sb.WriteString(piece)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyTranslation
	}
	return sb.String(), nil
}
