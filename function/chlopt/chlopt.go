package chlopt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dop251/goja"
)

const objectMarker = "window._cf_chl_opt={"

// Options is the challenge configuration object embedded in an interstitial
// page. All fields are optional; pages carry different subsets depending on
// the challenge variant.
type Options struct {
	CType          string `json:"cType,omitempty"`
	CvID           string `json:"cvId,omitempty"`
	CFPWv          string `json:"cFPWv,omitempty"`
	CZone          string `json:"cZone,omitempty"`
	CRay           string `json:"cRay,omitempty"`
	CH             string `json:"cH,omitempty"`
	MD             string `json:"md,omitempty"`
	CITimeS        string `json:"cITimeS,omitempty"`
	ChlApivID      string `json:"chlApivId,omitempty"`
	ChlApiWidgetID string `json:"chlApiWidgetId,omitempty"`
	ChlApiSitekey  string `json:"chlApiSitekey,omitempty"`
	ChlApiMode     string `json:"chlApiMode,omitempty"`
	ChlApiSize     string `json:"chlApiSize,omitempty"`
	ChlApiRcV      string `json:"chlApiRcV,omitempty"`
	ChlApiResetSrc string `json:"chlApiResetSrc,omitempty"`
	ChlIssUA       string `json:"chlIssUA,omitempty"`
	ChlIP          string `json:"chlIp,omitempty"`
	TurnstileU     string `json:"turnstileU,omitempty"`
}

// FromHTML extracts the window._cf_chl_opt object from a page. The object
// literal is evaluated as JavaScript; when evaluation fails (the page was
// truncated mid-save, for instance) a plain key/value scan is used instead.
func FromHTML(html string) (*Options, error) {
	idx := strings.Index(html, objectMarker)
	if idx < 0 {
		return nil, fmt.Errorf("window._cf_chl_opt object not found")
	}
	src := html[idx+len(objectMarker)-1:]
	if end := strings.Index(src, "</script>"); end >= 0 {
		src = src[:end]
	}
	objSrc, err := balancedObject(src)
	if err != nil {
		return nil, err
	}

	values, err := evalObject(objSrc)
	if err != nil {
		values = scanPairs(objSrc)
	}

	opt := &Options{TurnstileU: extractTurnstileU(html)}
	for key, val := range values {
		switch key {
		case "cType":
			opt.CType = val
		case "cvId":
			opt.CvID = val
		case "cFPWv":
			opt.CFPWv = val
		case "cZone":
			opt.CZone = val
		case "cRay":
			opt.CRay = val
		case "cH":
			opt.CH = val
		case "md":
			opt.MD = val
		case "cITimeS":
			opt.CITimeS = val
		case "chlApivId":
			opt.ChlApivID = val
		case "chlApiWidgetId":
			opt.ChlApiWidgetID = val
		case "chlApiSitekey":
			opt.ChlApiSitekey = val
		case "chlApiMode":
			opt.ChlApiMode = val
		case "chlApiSize":
			opt.ChlApiSize = val
		case "chlApiRcV":
			opt.ChlApiRcV = val
		case "chlApiResetSrc":
			opt.ChlApiResetSrc = val
		case "chlIssUA":
			opt.ChlIssUA = val
		case "chlIp":
			opt.ChlIP = val
		}
	}
	return opt, nil
}

// balancedObject returns the object literal starting at the leading brace,
// tracking string literals so braces inside values don't end the scan.
func balancedObject(s string) (string, error) {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unterminated challenge options object")
}

func evalObject(src string) (map[string]string, error) {
	vm := goja.New()
	value, err := vm.RunString("(" + src + ")")
	if err != nil {
		return nil, err
	}
	exported, ok := value.Export().(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("challenge options did not evaluate to an object")
	}
	out := make(map[string]string, len(exported))
	for key, raw := range exported {
		if s, ok := raw.(string); ok {
			out[key] = s
		}
	}
	return out, nil
}

var pairRe = regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)\s*:\s*('[^']*'|"[^"]*")`)

func scanPairs(src string) map[string]string {
	out := make(map[string]string)
	for _, m := range pairRe.FindAllStringSubmatch(src, -1) {
		if _, seen := out[m[1]]; seen {
			continue
		}
		out[m[1]] = strings.Trim(m[2], `'"`)
	}
	return out
}

// extractTurnstileU pulls the turnstile u value that sits next to
// chlTimeoutMs outside the main options object.
func extractTurnstileU(html string) string {
	_, rest, found := strings.Cut(html, "chlTimeoutMs:")
	if !found {
		return ""
	}
	fields := strings.SplitN(rest, ",", 3)
	if len(fields) < 2 {
		return ""
	}
	seg := fields[1]
	start := strings.IndexAny(seg, `'"`)
	if start < 0 {
		return ""
	}
	seg = seg[start+1:]
	end := strings.IndexAny(seg, `'"`)
	if end < 0 {
		return ""
	}
	return seg[:end]
}
