package checker

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"checkcachet/internal/config"
)

// Checker ステータスページを1回だけ取得する構造体
type Checker struct {
	config     *config.Config
	httpClient *http.Client
}

// NewChecker 新しいCheckerインスタンスを作成
func NewChecker(cfg *config.Config) *Checker {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	// TLS設定
	if cfg.Insecure {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	maxRedirects := cfg.MaxRedirects
	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Checker{
		config:     cfg,
		httpClient: client,
	}
}

// Fetch 対象URLにGETを1回だけ送る。リトライはしない
// 200以外のステータスでは結果とKindHTTPErrorの両方を返す
func (c *Checker) Fetch(ctx context.Context, targetURL string) (*FetchResult, error) {
	if _, err := url.ParseRequestURI(targetURL); err != nil {
		return nil, &FetchError{Kind: KindInvalidURL, URL: targetURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindRequestError, URL: targetURL, Err: err}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classify(targetURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodySize))
	if err != nil {
		if fetchErr := c.classify(targetURL, err); fetchErr.Kind == KindTimeout {
			return nil, fetchErr
		}
		return nil, &FetchError{Kind: KindReadFailed, URL: targetURL, Err: err}
	}

	result := &FetchResult{
		URL:          targetURL,
		StatusCode:   resp.StatusCode,
		Body:         string(body),
		ResponseTime: time.Since(startTime),
		Timestamp:    startTime,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &FetchError{Kind: KindHTTPError, URL: targetURL, StatusCode: resp.StatusCode}
	}

	return result, nil
}

// classify 通信エラーを分類する
func (c *Checker) classify(targetURL string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Kind: KindTimeout, URL: targetURL, Timeout: c.config.Timeout, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &FetchError{Kind: KindRequestFailed, URL: targetURL, Err: urlErr.Err}
	}
	return &FetchError{Kind: KindRequestFailed, URL: targetURL, Err: err}
}
