package fetcher

import (
	"net/http"
	"os"

	"github.com/imroc/req/v3"
	"github.com/sirupsen/logrus"

	"cfinspect/function/chlpage"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/110.0"

// Page is one fetched document plus its challenge classification.
type Page struct {
	URL        string
	StatusCode int
	Server     string
	Body       []byte
	Challenge  chlpage.ChallengeType
	Markers    []string
}

type Fetcher struct {
	client *req.Client
}

// New builds a client that never follows redirects, so a challenge
// interstitial is captured instead of whatever it would bounce to.
func New(debug bool) *Fetcher {
	client := req.C().
		SetUserAgent(userAgent).
		SetRedirectPolicy(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		})
	if debug {
		client.SetLogger(logrus.StandardLogger()).EnableDebugLog()
	}
	return &Fetcher{client: client}
}

func (f *Fetcher) Fetch(url string) (*Page, error) {
	res, err := f.client.R().Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body := res.Bytes()
	challenge, markers := chlpage.Detect(body)
	return &Page{
		URL:        url,
		StatusCode: res.StatusCode,
		Server:     res.Header.Get("Server"),
		Body:       body,
		Challenge:  challenge,
		Markers:    markers,
	}, nil
}

// Save fetches url and writes the body to path for later inspection.
func (f *Fetcher) Save(url, path string) (*Page, error) {
	page, err := f.Fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, page.Body, 0644); err != nil {
		return nil, err
	}
	return page, nil
}
