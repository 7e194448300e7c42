package chlpage_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cfinspect/function/chlpage"
)

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chl.html")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runPipeline(t *testing.T, content string) string {
	t.Helper()
	var buf bytes.Buffer
	chlpage.New(writePage(t, content), &buf).Run(chlpage.DefaultSteps())
	return buf.String()
}

func sectionBody(t *testing.T, output, label string) string {
	t.Helper()
	header := "===== " + label + " =====\n"
	idx := strings.Index(output, header)
	if idx < 0 {
		t.Fatalf("section %q not found in output:\n%s", label, output)
	}
	rest := output[idx+len(header):]
	if next := strings.Index(rest, "====="); next >= 0 {
		rest = rest[:next]
	}
	return rest
}

func TestFullAssignment(t *testing.T) {
	page := `<html><body><script>window._cf_chl_opt.cH = "abcdefghijklmnopqrstuvwxyz012345";</script></body></html>`
	out := runPipeline(t, page)

	got := sectionBody(t, out, "window._cf_chl_opt.cH assignment")
	want := `window._cf_chl_opt.cH = "abcdefghijklmnopqrstuvwxyz012345"` + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("step 1 output mismatch (-want +got):\n%s", diff)
	}
}

func TestShortFormKeepsFirstFive(t *testing.T) {
	var sb strings.Builder
	var want []string
	for i := 0; i < 7; i++ {
		value := fmt.Sprintf("value%02d-aaaaaaaaaaaaaaaaaaaa", i)
		fmt.Fprintf(&sb, "a.cH = \"%s\";\n", value)
		if i < 5 {
			want = append(want, fmt.Sprintf(".cH = \"%s\"", value))
		}
	}
	out := runPipeline(t, sb.String())

	body := sectionBody(t, out, ".cH assignment (short form)")
	got := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("step 2 output mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyValueAndMinifiedForms(t *testing.T) {
	page := `{"cH": "abcdefghijklmnopqrstuvwxyz"} cH:"zyxwvutsrqponmlkjihgfedcba"`
	out := runPipeline(t, page)

	if got := sectionBody(t, out, `"cH" key/value pair`); got != `"cH": "abcdefghijklmnopqrstuvwxyz"`+"\n" {
		t.Errorf("key/value step: got %q", got)
	}
	if got := sectionBody(t, out, "cH minified form"); got != `cH:"zyxwvutsrqponmlkjihgfedcba"`+"\n" {
		t.Errorf("minified step: got %q", got)
	}
}

func TestAnyPropertyAssignments(t *testing.T) {
	page := "window._cf_chl_opt.cRay = '8f2e1ab44c1a2b3c';\nwindow._cf_chl_opt.cType = \"managed\";\n"
	out := runPipeline(t, page)

	body := sectionBody(t, out, "window._cf_chl_opt assignments (any property)")
	want := []string{
		`window._cf_chl_opt.cRay = '8f2e1ab44c1a2b3c'`,
		`window._cf_chl_opt.cType = "managed"`,
	}
	got := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("step 5 output mismatch (-want +got):\n%s", diff)
	}
}

func TestContextWithoutMarkerIsEmpty(t *testing.T) {
	out := runPipeline(t, "<html><script>nothing here</script></html>")
	if got := sectionBody(t, out, "var _cf_chl_opt context"); got != "" {
		t.Errorf("expected empty context output, got %q", got)
	}
}

func TestContextPrintsFollowingLines(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("var _cf_chl_opt = {};\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "line%02d\n", i)
	}
	out := runPipeline(t, sb.String())

	body := sectionBody(t, out, "var _cf_chl_opt context")
	got := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if len(got) != 21 {
		t.Fatalf("expected match line plus 20 following, got %d lines", len(got))
	}
	if got[0] != "var _cf_chl_opt = {};" || got[20] != "line19" {
		t.Errorf("unexpected context window: first=%q last=%q", got[0], got[20])
	}
}

func TestContextCappedAtThirtyLines(t *testing.T) {
	var sb strings.Builder
	for m := 0; m < 3; m++ {
		fmt.Fprintf(&sb, "var _cf_chl_opt = {}; // hit %d\n", m)
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&sb, "filler%02d-%02d\n", m, i)
		}
	}
	out := runPipeline(t, sb.String())

	body := sectionBody(t, out, "var _cf_chl_opt context")
	got := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if len(got) != 30 {
		t.Errorf("expected context capped at 30 lines, got %d", len(got))
	}
}

func TestScriptBlockTruncatedAtTwoThousand(t *testing.T) {
	content := strings.Repeat("0123456789", 250) // 2500 chars
	page := "<html><head><script>" + content + "</script></head></html>"
	out := runPipeline(t, page)

	got := sectionBody(t, out, "first script block")
	want := content[:2000] + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("step 7 output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunsAreIdempotent(t *testing.T) {
	page := `<script>window._cf_chl_opt.cH = "abcdefghijklmnopqrstuvwxyz";</script>`
	path := writePage(t, page)

	var first, second bytes.Buffer
	chlpage.New(path, &first).Run(chlpage.DefaultSteps())
	chlpage.New(path, &second).Run(chlpage.DefaultSteps())
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs over the same file produced different output")
	}
}

func headersOnly() string {
	var sb strings.Builder
	for _, s := range chlpage.DefaultSteps() {
		fmt.Fprintf(&sb, "===== %s =====\n", s.Label)
	}
	return sb.String()
}

func TestEmptyFileProducesHeadersOnly(t *testing.T) {
	out := runPipeline(t, "")
	if diff := cmp.Diff(headersOnly(), out); diff != "" {
		t.Errorf("empty file output mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingFileStillCompletes(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "does-not-exist.html")
	chlpage.New(path, &buf).Run(chlpage.DefaultSteps())
	if diff := cmp.Diff(headersOnly(), buf.String()); diff != "" {
		t.Errorf("missing file output mismatch (-want +got):\n%s", diff)
	}
}
