package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaDesktop = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

func TestUADetector(t *testing.T) {
	d := UADetector{}

	assert.Equal(t, TargetMobile, d.Detect(uaAndroid))
	assert.Equal(t, TargetMobile, d.Detect(uaIPhone))
	assert.Equal(t, TargetDesktop, d.Detect(uaDesktop))
	assert.Equal(t, TargetDesktop, d.Detect(""), "no user agent defaults to desktop")
}

func TestSendURLSchemes(t *testing.T) {
	msg := "Fish Bill - 2024-01-15\nBalance: ₹500.00"

	mobile := TargetMobile.SendURL(msg)
	assert.True(t, strings.HasPrefix(mobile, "whatsapp://send?text="), "mobile uses the native scheme, got %q", mobile)

	desktop := TargetDesktop.SendURL(msg)
	assert.True(t, strings.HasPrefix(desktop, "https://web.whatsapp.com/send?text="), "desktop uses WhatsApp Web, got %q", desktop)

	fallback := FallbackURL(msg)
	assert.True(t, strings.HasPrefix(fallback, "https://api.whatsapp.com/send?text="), "fallback uses the api endpoint, got %q", fallback)
}

func TestSendURLEncodesMessage(t *testing.T) {
	url := TargetDesktop.SendURL("a&b=c\nd")
	assert.NotContains(t, url, "\n")
	assert.NotContains(t, strings.TrimPrefix(url, "https://web.whatsapp.com/send?text="), "&")
}
