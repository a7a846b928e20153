package status

// Table バッジのクラス名から判定レベルへの対応表
type Table map[string]Severity

// DefaultTable Cachetのステータスページで使われるクラス名の対応表を返す
func DefaultTable() Table {
	return Table{
		"status-1": OK,
		"greens":   OK,
		"status-2": Warning, // performance issues
		"yellows":  Warning,
		"blues":    Warning,
		"status-3": Warning, // partial outage
		"status-4": Critical,
		"status-5": Critical,
		"reds":     Critical,
	}
}

// Resolve タグに対応する判定レベルを返す
func (t Table) Resolve(tag string) (Severity, bool) {
	sev, ok := t[tag]
	return sev, ok
}

// Match クラス一覧のうち既知のタグを宣言順に返す（重複は除く）
func (t Table) Match(classes []string) []string {
	var matched []string
	seen := make(map[string]bool)
	for _, class := range classes {
		if _, ok := t[class]; !ok || seen[class] {
			continue
		}
		seen[class] = true
		matched = append(matched, class)
	}
	return matched
}

// Pick 複数のタグから最も深刻なものを選ぶ（同レベルなら宣言順で先のもの）
func (t Table) Pick(tags []string) (string, Severity, bool) {
	var (
		best    string
		bestSev Severity
		found   bool
	)
	for _, tag := range tags {
		sev, ok := t[tag]
		if !ok {
			continue
		}
		if !found || sev > bestSev {
			best, bestSev, found = tag, sev, true
		}
	}
	return best, bestSev, found
}
