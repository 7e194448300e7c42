package chlopt_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cfinspect/function/chlopt"
)

const samplePage = `<!DOCTYPE html><html><head><title>Just a moment...</title><script>
window._cf_chl_opt={
    cvId: '3',
    cZone: "example.com",
    cType: 'managed',
    cRay: '8f2e1ab44c1a2b3c',
    cH: 'abcdefghijklmnopqrstuvwxyz0123456789abcd',
    cITimeS: '1700000000',
    md: 'payload_blob_here',
    cFPWv: 'b',
};
var cpo = {chlTimeoutMs: 30000, u: '/cdn-cgi/challenge-platform/h/b/orchestrate/chl_page/v1'};
</script></head><body></body></html>`

func TestFromHTML(t *testing.T) {
	opt, err := chlopt.FromHTML(samplePage)
	if err != nil {
		t.Fatal(err)
	}
	want := &chlopt.Options{
		CvID:       "3",
		CZone:      "example.com",
		CType:      "managed",
		CRay:       "8f2e1ab44c1a2b3c",
		CH:         "abcdefghijklmnopqrstuvwxyz0123456789abcd",
		CITimeS:    "1700000000",
		MD:         "payload_blob_here",
		CFPWv:      "b",
		TurnstileU: "/cdn-cgi/challenge-platform/h/b/orchestrate/chl_page/v1",
	}
	if diff := cmp.Diff(want, opt); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHTMLMissingObject(t *testing.T) {
	if _, err := chlopt.FromHTML("<html><body>no challenge here</body></html>"); err == nil {
		t.Error("expected error when the options object is absent")
	}
}

func TestFromHTMLUnterminatedObject(t *testing.T) {
	page := `<script>window._cf_chl_opt={cH: 'abc', cRay: '123'</script>`
	if _, err := chlopt.FromHTML(page); err == nil {
		t.Error("expected error for an unterminated object literal")
	}
}

func TestFromHTMLFallsBackOnBrokenJS(t *testing.T) {
	page := `<script>window._cf_chl_opt={cH: 'abcdefghij', cRay: '8f2e1ab44c1a2b3c', broken:,}</script>`
	opt, err := chlopt.FromHTML(page)
	if err != nil {
		t.Fatal(err)
	}
	if opt.CH != "abcdefghij" {
		t.Errorf("cH = %q, want %q", opt.CH, "abcdefghij")
	}
	if opt.CRay != "8f2e1ab44c1a2b3c" {
		t.Errorf("cRay = %q, want %q", opt.CRay, "8f2e1ab44c1a2b3c")
	}
}

func TestFromHTMLIgnoresNonStringValues(t *testing.T) {
	page := `<script>window._cf_chl_opt={cH: 'abcdefghij', cTplV: 5, fa: function(){}}</script>`
	opt, err := chlopt.FromHTML(page)
	if err != nil {
		t.Fatal(err)
	}
	if opt.CH != "abcdefghij" {
		t.Errorf("cH = %q, want %q", opt.CH, "abcdefghij")
	}
}

func TestTurnstileUAbsent(t *testing.T) {
	page := `<script>window._cf_chl_opt={cH: 'abcdefghij'}</script>`
	opt, err := chlopt.FromHTML(page)
	if err != nil {
		t.Fatal(err)
	}
	if opt.TurnstileU != "" {
		t.Errorf("expected empty turnstile u, got %q", opt.TurnstileU)
	}
}
