package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Version check_cachet のバージョン
const Version = "1.0.0"

// Config アプリケーションの設定を保持する構造体
type Config struct {
	URL          string        // チェック対象のステータスページ
	Warning      int           // 任意の整数を受け付けるが判定には使わない（互換性のため）
	Critical     int           // 同上
	Timeout      time.Duration // タイムアウト時間（デフォルト: 10秒）
	MaxRedirects int           // リダイレクト上限
	MaxBodySize  int64         // 読み込むレスポンスの上限（バイト）
	UserAgent    string
	Insecure     bool // SSL証明書の検証をスキップ
	Verbose      bool // 診断情報をstderrに出力
	NoColor      bool // カラー出力を無効化
}

// DefaultConfig デフォルト設定を返す
func DefaultConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		MaxRedirects: 10,
		MaxBodySize:  5 << 20,
		UserAgent:    "check-cachet/" + Version,
		Insecure:     false,
		Verbose:      false,
		NoColor:      false,
	}
}

// Validate 設定値の妥当性を確認
func (c *Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return errors.New("url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("max redirects must not be negative, got %d", c.MaxRedirects)
	}
	return nil
}

// NormalizeURL "http" で始まらない場合に https:// を付与する
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}
