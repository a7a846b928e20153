package stats

import (
	"fmt"
	"strings"

	"checkcachet/internal/extractor"
	"checkcachet/internal/status"
)

// Calculate 判定結果からレベルごとの件数と最悪値を計算
func Calculate(entries []extractor.Entry) *Statistics {
	s := &Statistics{
		Counts: make(map[status.Severity]int),
		Worst:  status.OK,
	}

	if len(entries) == 0 {
		return s
	}

	for _, entry := range entries {
		s.Total++
		s.Counts[entry.Severity]++
		s.Worst = status.Max(s.Worst, entry.Severity)
	}

	return s
}

// Summary "4 components: 1 CRITICAL, 3 OK" 形式の要約を返す
func (s *Statistics) Summary() string {
	var parts []string
	for _, tier := range status.Tiers {
		if n := s.Count(tier); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, tier))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d components", s.Total)
	}
	return fmt.Sprintf("%d components: %s", s.Total, strings.Join(parts, ", "))
}
