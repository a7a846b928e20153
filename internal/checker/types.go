package checker

import (
	"fmt"
	"net/http"
	"time"
)

// FetchResult ステータスページ取得結果
type FetchResult struct {
	URL          string
	StatusCode   int
	Body         string
	ResponseTime time.Duration
	Timestamp    time.Time
}

// ResponseTimeMs 応答時間をミリ秒で返す
func (r *FetchResult) ResponseTimeMs() float64 {
	return float64(r.ResponseTime.Nanoseconds()) / 1e6
}

// ErrorKind 取得失敗の分類
type ErrorKind string

const (
	KindInvalidURL    ErrorKind = "invalid_url"
	KindRequestError  ErrorKind = "request_error"
	KindRequestFailed ErrorKind = "request_failed"
	KindTimeout       ErrorKind = "timeout"
	KindHTTPError     ErrorKind = "http_error"
	KindReadFailed    ErrorKind = "read_failed"
)

// FetchError 取得失敗。UNKNOWNのメッセージに使える情報を持つ
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int
	Timeout    time.Duration
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason())
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Reason 利用者向けの短い理由
func (e *FetchError) Reason() string {
	switch e.Kind {
	case KindHTTPError:
		return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case KindTimeout:
		return fmt.Sprintf("timed out after %v", e.Timeout)
	case KindInvalidURL:
		return fmt.Sprintf("invalid url: %v", e.Err)
	case KindReadFailed:
		return fmt.Sprintf("failed to read response: %v", e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("request failed: %v", e.Err)
		}
		return "request failed"
	}
}
