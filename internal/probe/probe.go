package probe

import (
	"context"
	"errors"
	"fmt"

	"checkcachet/internal/checker"
	"checkcachet/internal/extractor"
	"checkcachet/internal/report"
	"checkcachet/internal/status"
)

// Fetcher ステータスページの取得
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) (*checker.FetchResult, error)
}

// Outcome 1回のプローブの結果
type Outcome struct {
	URL         string
	Fetch       *checker.FetchResult // 通信に失敗した場合はnil
	FetchErr    error
	Diagnostics []extractor.Diagnostic
	Report      *report.Report
}

// Probe 取得・抽出・集約を順に実行する
type Probe struct {
	fetcher Fetcher
	table   status.Table
}

// New 新しいProbeを作成。tableがnilならデフォルトの対応表を使う
func New(fetcher Fetcher, table status.Table) *Probe {
	if table == nil {
		table = status.DefaultTable()
	}
	return &Probe{fetcher: fetcher, table: table}
}

// Run 対象URLを1回チェックする。取得失敗はUNKNOWNとして扱う
func (p *Probe) Run(ctx context.Context, targetURL string) *Outcome {
	outcome := &Outcome{URL: targetURL}

	result, err := p.fetcher.Fetch(ctx, targetURL)
	outcome.Fetch = result
	if err != nil {
		outcome.FetchErr = err
		outcome.Report = report.Aggregate([]extractor.Entry{{
			Severity:    status.Unknown,
			Description: unreachable(targetURL, err),
		}}, targetURL)
		return outcome
	}

	extracted := extractor.Extract(result.Body, p.table)
	outcome.Diagnostics = extracted.Diagnostics
	outcome.Report = report.Aggregate(extracted.Entries, targetURL)
	return outcome
}

// unreachable 取得失敗時の説明
func unreachable(targetURL string, err error) string {
	msg := `Unable to request url "` + targetURL + `"`
	var fetchErr *checker.FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("%s (%s)", msg, fetchErr.Reason())
	}
	return fmt.Sprintf("%s (%v)", msg, err)
}
