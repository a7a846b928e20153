package stats

import "checkcachet/internal/status"

// Statistics 判定結果の集計
type Statistics struct {
	Total  int
	Counts map[status.Severity]int
	Worst  status.Severity
}

// Count 指定レベルの件数を返す
func (s *Statistics) Count(sev status.Severity) int {
	return s.Counts[sev]
}
