package report

import (
	"strings"

	"checkcachet/internal/extractor"
	"checkcachet/internal/stats"
	"checkcachet/internal/status"
)

// Report 集約結果
type Report struct {
	Severity   status.Severity
	Text       string
	Statistics *stats.Statistics
}

// ExitCode 監視プラグインとしての終了コード
func (r *Report) ExitCode() int {
	return r.Severity.ExitCode()
}

// Aggregate 判定結果を全体の判定とレポート文字列にまとめる
// 空の場合は "Unable to parse" のUNKNOWNを補う
func Aggregate(entries []extractor.Entry, url string) *Report {
	if len(entries) == 0 {
		entries = []extractor.Entry{{
			Severity:    status.Unknown,
			Description: `Unable to parse "` + url + `".`,
		}}
	}

	statistics := stats.Calculate(entries)

	return &Report{
		Severity:   statistics.Worst,
		Text:       Format(entries),
		Statistics: statistics,
	}
}

// Format レベルごとに1行ずつ、緊急度の高い順に並べる
func Format(entries []extractor.Entry) string {
	var lines []string
	for _, tier := range status.Tiers {
		var descriptions []string
		for _, entry := range entries {
			if entry.Severity == tier {
				descriptions = append(descriptions, entry.Description)
			}
		}
		if len(descriptions) == 0 {
			continue
		}
		lines = append(lines, tier.String()+": "+strings.Join(descriptions, ", "))
	}
	return strings.Join(lines, "\n")
}
