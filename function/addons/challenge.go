package addons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lqqyt2423/go-mitmproxy/proxy"

	"cfinspect/function/chlpage"
	"cfinspect/function/log"
)

// ChallengeDetector flags HTML responses that are challenge interstitials
// and optionally saves their bodies for offline inspection.
type ChallengeDetector struct {
	proxy.BaseAddon
	saveDir string
}

func NewChallengeDetector(saveDir string) *ChallengeDetector {
	return &ChallengeDetector{saveDir: saveDir}
}

func (a *ChallengeDetector) Response(f *proxy.Flow) {
	if f.Response == nil {
		return
	}
	if !strings.Contains(f.Response.Header.Get("Content-Type"), "text/html") {
		return
	}
	body, err := f.Response.DecodedBody()
	if err != nil {
		return
	}
	challenge, markers := chlpage.Detect(body)
	if challenge == chlpage.ChallengeNone {
		return
	}

	logx := log.InitFlowLog("Challenge", f)
	logx.Infof("%s challenge (%s)", challenge, strings.Join(markers, ", "))

	if a.saveDir == "" {
		return
	}
	name := fmt.Sprintf("%s-%d.html", f.Request.URL.Hostname(), time.Now().UnixMilli())
	path := filepath.Join(a.saveDir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		logx.Errorf("save %s: %v", path, err)
		return
	}
	logx.Infof("saved to %s", path)
}
