package response

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Severity tags a notice for display.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notice is a one-shot message shown on the next view.
type Notice struct {
	Severity Severity `json:"severity"`
	Code     ErrCode  `json:"code,omitempty"`
	Message  string   `json:"message"`
}

const (
	FlashCookie     = "cc_flash"
	maxNotices      = 8
	contextKeyFlash = "flash_pending"
)

// SecureCookies marks flash and session cookies Secure. Set once at startup.
var SecureCookies bool

// AddNotice queues a notice for the next view.
func AddNotice(c *gin.Context, severity Severity, code ErrCode, message string) {
	pending := pendingNotices(c)
	pending = append(pending, Notice{Severity: severity, Code: code, Message: message})
	c.Set(contextKeyFlash, pending)
}

// Redirect sends a 303 to location, carrying every queued notice in the flash cookie.
func Redirect(c *gin.Context, location string) {
	notices := append(readFlash(c), pendingNotices(c)...)
	if len(notices) > maxNotices {
		notices = notices[len(notices)-maxNotices:]
	}
	if len(notices) > 0 {
		raw, _ := json.Marshal(notices)
		setFlashCookie(c, base64.RawURLEncoding.EncodeToString(raw), 0)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// AbortRedirect is Redirect for middleware.
func AbortRedirect(c *gin.Context, location string) {
	Redirect(c, location)
	c.Abort()
}

// TakeNotices returns and clears the notices carried into this request.
func TakeNotices(c *gin.Context) []Notice {
	notices := append(readFlash(c), pendingNotices(c)...)
	if _, err := c.Cookie(FlashCookie); err == nil {
		setFlashCookie(c, "", -1)
	}
	c.Set(contextKeyFlash, []Notice(nil))
	if notices == nil {
		notices = []Notice{}
	}
	return notices
}

func pendingNotices(c *gin.Context) []Notice {
	v, ok := c.Get(contextKeyFlash)
	if !ok {
		return nil
	}
	notices, _ := v.([]Notice)
	return notices
}

func readFlash(c *gin.Context) []Notice {
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(raw, &notices); err != nil {
		return nil
	}
	return notices
}

func setFlashCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, value, maxAge, "/", "", SecureCookies, true)
}
