package extractor

import "checkcachet/internal/status"

// 対象となるリスト項目が持つべきクラス
var componentClasses = []string{"list-group-item", "sub-component"}

// Entry コンポーネント1件分の判定結果
type Entry struct {
	Severity    status.Severity
	Description string
}

// DiagnosticKind 抽出時の診断の種類
type DiagnosticKind string

const (
	KindMissingBadge    DiagnosticKind = "missing_badge"
	KindUnknownStatus   DiagnosticKind = "unknown_status"
	KindAmbiguousStatus DiagnosticKind = "ambiguous_status"
)

// Diagnostic 候補要素ごとの診断情報
type Diagnostic struct {
	Index   int // 候補要素の通し番号（0始まり）
	Kind    DiagnosticKind
	Message string
}

// Result 抽出結果（Entriesは文書順）
type Result struct {
	Entries     []Entry
	Diagnostics []Diagnostic
}
