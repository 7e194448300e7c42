package chlpage

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// DefaultFile is the saved page the diagnostics read when no path is given.
const DefaultFile = "chl.html"

type StepKind int

const (
	// KindMatch prints every non-overlapping regexp match, one per line.
	KindMatch StepKind = iota
	// KindContext prints each line containing a literal substring plus the
	// following After lines.
	KindContext
	// KindScript prints the content of the first <script> block verbatim.
	KindScript
)

type Step struct {
	Label   string
	Kind    StepKind
	Pattern string // regexp for KindMatch, literal substring for KindContext
	Cap     int    // max matches (KindMatch) or max printed lines (KindContext), 0 = uncapped
	After   int    // lines printed after each hit for KindContext
	Chars   int    // max characters for KindScript, 0 = uncapped
}

// DefaultSteps is the ordered cH hunt: from the most specific assignment form
// down to a raw dump of the first script block.
func DefaultSteps() []Step {
	return []Step{
		{
			Label:   "window._cf_chl_opt.cH assignment",
			Kind:    KindMatch,
			Pattern: `window\._cf_chl_opt\.cH\s*=\s*['"][^'"]+['"]`,
		},
		{
			Label:   ".cH assignment (short form)",
			Kind:    KindMatch,
			Pattern: `\.cH\s*=\s*['"][^'"]{20,}['"]`,
			Cap:     5,
		},
		{
			Label:   `"cH" key/value pair`,
			Kind:    KindMatch,
			Pattern: `"cH"\s*:\s*"[^"]{20,}"`,
			Cap:     5,
		},
		{
			Label:   "cH minified form",
			Kind:    KindMatch,
			Pattern: `cH:"[^"]{20,}"`,
			Cap:     5,
		},
		{
			Label:   "window._cf_chl_opt assignments (any property)",
			Kind:    KindMatch,
			Pattern: `window\._cf_chl_opt\.[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*['"][^'"]*['"]`,
			Cap:     20,
		},
		{
			Label:   "var _cf_chl_opt context",
			Kind:    KindContext,
			Pattern: "var _cf_chl_opt",
			After:   20,
			Cap:     30,
		},
		{
			Label: "first script block",
			Kind:  KindScript,
			Chars: 2000,
		},
	}
}

// Pipeline runs steps against one file. Each step re-reads the file so a
// missing or unreadable input degrades to empty sections, never an abort.
type Pipeline struct {
	Path string
	Out  io.Writer
}

func New(path string, out io.Writer) *Pipeline {
	return &Pipeline{Path: path, Out: out}
}

func (p *Pipeline) Run(steps []Step) {
	for _, s := range steps {
		fmt.Fprintf(p.Out, "===== %s =====\n", s.Label)
		content, err := os.ReadFile(p.Path)
		if err != nil {
			continue
		}
		p.runStep(s, string(content))
	}
}

func (p *Pipeline) runStep(s Step, content string) {
	switch s.Kind {
	case KindMatch:
		p.matchStep(s, content)
	case KindContext:
		p.contextStep(s, content)
	case KindScript:
		p.scriptStep(s, content)
	}
}

func (p *Pipeline) matchStep(s Step, content string) {
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return
	}
	n := -1
	if s.Cap > 0 {
		n = s.Cap
	}
	for _, m := range re.FindAllString(content, n) {
		fmt.Fprintln(p.Out, m)
	}
}

func (p *Pipeline) contextStep(s Step, content string) {
	lines := strings.Split(content, "\n")
	printed := 0
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], s.Pattern) {
			continue
		}
		end := i + s.After
		if end >= len(lines) {
			end = len(lines) - 1
		}
		for ; i <= end; i++ {
			if s.Cap > 0 && printed >= s.Cap {
				return
			}
			fmt.Fprintln(p.Out, lines[i])
			printed++
		}
		i--
	}
}

func (p *Pipeline) scriptStep(s Step, content string) {
	open := strings.Index(content, "<script")
	if open < 0 {
		return
	}
	gt := strings.Index(content[open:], ">")
	if gt < 0 {
		return
	}
	body := content[open+gt+1:]
	if end := strings.Index(body, "</script>"); end >= 0 {
		body = body[:end]
	}
	if s.Chars > 0 && len(body) > s.Chars {
		body = body[:s.Chars]
	}
	fmt.Fprintln(p.Out, body)
}
