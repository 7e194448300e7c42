package chlpage

import "bytes"

type ChallengeType int

const (
	ChallengeNone ChallengeType = iota
	ChallengeJS
	ChallengeCaptcha
)

func (c ChallengeType) String() string {
	switch c {
	case ChallengeNone:
		return "none"
	case ChallengeJS:
		return "js"
	case ChallengeCaptcha:
		return "captcha"
	default:
		return "unknown"
	}
}

var captchaMarkers = []string{
	"turnstile",
	"challenges.cloudflare.com",
	"h-captcha",
	"g-recaptcha",
	"www.google.com/recaptcha",
}

var jsMarkers = []string{
	"Just a moment",
	"_cf_chl",
	"cf-challenge",
	"jschl_vc",
	"jschl_answer",
}

// Detect classifies a page body by its challenge markers. Captcha markers win
// over plain JS challenge markers since a turnstile page also carries _cf_chl.
func Detect(body []byte) (ChallengeType, []string) {
	if found := matchedMarkers(body, captchaMarkers); len(found) > 0 {
		return ChallengeCaptcha, found
	}
	if found := matchedMarkers(body, jsMarkers); len(found) > 0 {
		return ChallengeJS, found
	}
	return ChallengeNone, nil
}

func matchedMarkers(body []byte, markers []string) []string {
	var found []string
	for _, m := range markers {
		if bytes.Contains(body, []byte(m)) {
			found = append(found, m)
		}
	}
	return found
}
