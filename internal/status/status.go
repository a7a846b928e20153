package status

// Severity 監視プラグインの判定レベル（数値がそのまま終了コードになる）
type Severity int

const (
	OK       Severity = 0
	Warning  Severity = 1
	Critical Severity = 2
	Unknown  Severity = 3
)

// Tiers レポート出力順（緊急度の高い順）
var Tiers = []Severity{Unknown, Critical, Warning, OK}

// String ティア名を返す
func (s Severity) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode プロセスの終了コードを返す
func (s Severity) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}
	return int(s)
}

// Max 数値的に大きい方を返す（UNKNOWNはCRITICALより優先される）
func Max(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}
