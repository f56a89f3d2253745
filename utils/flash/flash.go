// Package flash implements cookie-backed one-shot messages with
// categories. Messages added during one request are rendered on the
// next page load and then cleared.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const cookieName = "flash"

// Message is a single flash entry. Category is one of "success" or
// "error" and selects the banner style.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Add appends a message to the pending flash cookie.
func Add(c echo.Context, category, text string) {
	messages := pending(c)
	messages = append(messages, Message{Category: category, Text: text})
	write(c, messages)
}

// Pop returns all pending messages and clears the cookie.
func Pop(c echo.Context) []Message {
	messages := pending(c)
	if len(messages) == 0 {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return messages
}

func pending(c echo.Context) []Message {
	// Messages added earlier in this request take precedence over the
	// inbound cookie, so Add followed by Pop within one request works.
	raw := ""
	for _, cookie := range c.Response().Header()["Set-Cookie"] {
		if parsed, err := http.ParseSetCookie(cookie); err == nil && parsed.Name == cookieName {
			raw = parsed.Value
		}
	}
	if raw == "" {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			return nil
		}
		raw = cookie.Value
	}

	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(decoded, &messages); err != nil {
		return nil
	}
	return messages
}

func write(c echo.Context, messages []Message) {
	encoded, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
