package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"checkcachet/internal/config"
	"checkcachet/internal/probe"
	"checkcachet/internal/status"
)

var (
	colorRed    = color.New(color.FgRed, color.Bold)
	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
	colorGray   = color.New(color.FgHiBlack)
)

// severityColor 判定レベルごとの色
func severityColor(sev status.Severity) *color.Color {
	switch sev {
	case status.OK:
		return colorGreen
	case status.Warning:
		return colorYellow
	case status.Critical:
		return colorRed
	default:
		return colorCyan
	}
}

// printVerbose 取得・抽出の詳細をstderrに出力
func printVerbose(w io.Writer, cfg *config.Config, outcome *probe.Outcome) {
	colorCyan.Fprintf(w, "target: %s (timeout %v)\n", outcome.URL, cfg.Timeout)

	if outcome.Fetch != nil {
		colorGray.Fprintf(w, "HTTP %d, %d bytes in %.2fms\n",
			outcome.Fetch.StatusCode, len(outcome.Fetch.Body), outcome.Fetch.ResponseTimeMs())
	}
	if outcome.FetchErr != nil {
		colorRed.Fprintf(w, "fetch failed: %v\n", outcome.FetchErr)
	}

	for _, d := range outcome.Diagnostics {
		colorYellow.Fprintf(w, "component #%d: %s: %s\n", d.Index, d.Kind, d.Message)
	}

	if cfg.Warning != 0 || cfg.Critical != 0 {
		colorGray.Fprintf(w, "thresholds -w %d -c %d are accepted but not applied\n", cfg.Warning, cfg.Critical)
	}

	r := outcome.Report
	fmt.Fprint(w, "result: ")
	severityColor(r.Severity).Fprintf(w, "%s", r.Severity)
	fmt.Fprintf(w, " (%s)\n", r.Statistics.Summary())
}
