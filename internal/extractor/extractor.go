package extractor

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"checkcachet/internal/status"
)

// Extract HTMLからコンポーネントのステータスを抽出する
// 壊れた候補要素はスキップし、診断情報として記録する
func Extract(doc string, table status.Table) Result {
	result := Result{Entries: []Entry{}}

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return result
	}

	for i, item := range findCandidates(root) {
		entry, diag := classify(item, table)
		if diag != nil {
			diag.Index = i
			result.Diagnostics = append(result.Diagnostics, *diag)
		}
		if entry != nil {
			result.Entries = append(result.Entries, *entry)
		}
	}

	return result
}

// findCandidates 必須クラスを両方持つ<li>要素を文書順に集める
func findCandidates(root *html.Node) []*html.Node {
	var items []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Li && isComponent(classList(n)) {
			items = append(items, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return items
}

// isComponent クラス集合と必須クラスの共通部分が2件かどうか
func isComponent(classes []string) bool {
	count := 0
	for _, required := range componentClasses {
		for _, class := range classes {
			if class == required {
				count++
				break
			}
		}
	}
	return count == len(componentClasses)
}

// classify 候補要素1件を判定する
func classify(item *html.Node, table status.Table) (*Entry, *Diagnostic) {
	badge := findFirst(item, atom.Small)
	if badge == nil {
		return nil, &Diagnostic{
			Kind:    KindMissingBadge,
			Message: fmt.Sprintf("no status badge in %q", textContent(item)),
		}
	}

	// バッジを切り離してから本文を読む
	badge.Parent.RemoveChild(badge)
	text := textContent(item)
	badgeText := textContent(badge)

	tags := table.Match(classList(badge))
	if len(tags) == 0 {
		return nil, &Diagnostic{
			Kind:    KindUnknownStatus,
			Message: fmt.Sprintf("no known status class on badge of %q", text),
		}
	}

	tag, severity, _ := table.Pick(tags)

	var diag *Diagnostic
	if len(tags) > 1 {
		diag = &Diagnostic{
			Kind:    KindAmbiguousStatus,
			Message: fmt.Sprintf("multiple status classes %v on %q, keeping %q", tags, text, tag),
		}
	}

	description := text
	if severity != status.OK {
		description = fmt.Sprintf("%s: %s", text, badgeText)
	}

	return &Entry{Severity: severity, Description: description}, diag
}

// findFirst 子孫要素のうち最初に現れる指定タグを返す
func findFirst(n *html.Node, tag atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// classList class属性を宣言順に分割する
func classList(n *html.Node) []string {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			return strings.Fields(attr.Val)
		}
	}
	return nil
}

// textContent 子孫のテキストを連結し前後の空白を除く
// <script> と <style> の中身は含めない
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}
