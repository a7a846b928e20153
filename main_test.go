package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const statusPage = `<ul class="list-group">
<li class="list-group-item sub-component">API <small class="text-component-3 status-3">Partial Outage</small></li>
<li class="list-group-item sub-component">Website <small class="greens">Operational</small></li>
<li class="list-group-item sub-component">Broken</li>
</ul>`

func init() {
	color.NoColor = true
}

func newStatusServer(t *testing.T, code int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		w.Write([]byte(statusPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunWarning(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-u", srv.URL, "-w", "1", "-c", "2"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if want := "WARNING: API: Partial Outage\nOK: Website\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr should be empty without --verbose, got %q", stderr.String())
	}
}

func TestRunVerbose(t *testing.T) {
	srv := newStatusServer(t, http.StatusOK)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--url", srv.URL, "--verbose", "--no-color"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	out := stderr.String()
	for _, want := range []string{"missing_badge", "result: WARNING", "2 components: 1 WARNING, 1 OK"} {
		if !strings.Contains(out, want) {
			t.Errorf("stderr missing %q:\n%s", want, out)
		}
	}
}

func TestRunIgnoresThresholds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<li class="list-group-item sub-component">API <small class="status-1">Operational</small></li>`))
	}))
	t.Cleanup(srv.Close)

	for _, args := range [][]string{
		{"-u", srv.URL},
		{"-u", srv.URL, "-w", "-1"},
		{"-u", srv.URL, "-w", "-5", "-c", "-10"},
	} {
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)
		if code != 0 {
			t.Errorf("%v: exit code = %d, want 0", args, code)
		}
		if stdout.String() != "OK: API\n" {
			t.Errorf("%v: stdout = %q", args, stdout.String())
		}
	}
}

func TestRunHTTPError(t *testing.T) {
	srv := newStatusServer(t, http.StatusBadGateway)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-u", srv.URL}, &stdout, &stderr)

	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if !strings.HasPrefix(stdout.String(), "UNKNOWN: Unable to request url") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"URLなし", []string{}},
		{"不明なフラグ", []string{"-u", "x", "--bogus"}},
		{"数値でないしきい値", []string{"-u", "x", "-w", "abc"}},
		{"位置引数", []string{"-u", "x", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != 3 {
				t.Errorf("exit code = %d, want 3", code)
			}
			if !strings.HasPrefix(stdout.String(), "UNKNOWN: ") {
				t.Errorf("stdout = %q", stdout.String())
			}
		})
	}
}
