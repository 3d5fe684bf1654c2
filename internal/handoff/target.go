package handoff

import (
	"net/url"

	"github.com/mssola/useragent"
)

// Target selects which WhatsApp entry point the deep link aims at. Mobile
// devices get the native app scheme; everything else gets WhatsApp Web.
type Target string

const (
	TargetMobile  Target = "mobile"
	TargetDesktop Target = "desktop"
)

// SendURL builds the primary deep link carrying the URL-encoded message.
func (t Target) SendURL(message string) string {
	encoded := url.QueryEscape(message)
	if t == TargetMobile {
		return "whatsapp://send?text=" + encoded
	}
	return "https://web.whatsapp.com/send?text=" + encoded
}

// FallbackURL is the web endpoint opened when the native scheme appears not
// to have navigated away on mobile. Best-effort only.
func FallbackURL(message string) string {
	return "https://api.whatsapp.com/send?text=" + url.QueryEscape(message)
}

// Detector decides the target for a request. It is an injected strategy so
// handlers can be tested without real user-agent strings and so a deployment
// can pin a target outright.
type Detector interface {
	Detect(userAgentString string) Target
}

// UADetector sniffs the User-Agent header for a coarse mobile-versus-desktop
// split, backed by a real parser instead of substring matching.
type UADetector struct{}

func (UADetector) Detect(userAgentString string) Target {
	if userAgentString == "" {
		return TargetDesktop
	}
	ua := useragent.New(userAgentString)
	if ua.Mobile() {
		return TargetMobile
	}
	return TargetDesktop
}

// FixedDetector always answers with one target; used when the deployment
// knows its device, and in tests.
type FixedDetector struct {
	Target Target
}

func (d FixedDetector) Detect(string) Target { return d.Target }
