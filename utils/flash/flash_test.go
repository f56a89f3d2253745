package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAddThenPopWithinSameRequest(t *testing.T) {
	c, _ := newContext()

	Add(c, "success", "Post created.")
	Add(c, "error", "Slug already in use.")

	messages := Pop(c)
	require.Len(t, messages, 2)
	assert.Equal(t, Message{Category: "success", Text: "Post created."}, messages[0])
	assert.Equal(t, Message{Category: "error", Text: "Slug already in use."}, messages[1])
}

func TestPopReadsInboundCookie(t *testing.T) {
	// Simulate the redirect hop: messages written on request one ride
	// the cookie into request two.
	first, firstRec := newContext()
	Add(first, "success", "Welcome back.")

	var carried *http.Cookie
	for _, cookie := range firstRec.Result().Cookies() {
		if cookie.Name == "flash" {
			carried = cookie
		}
	}
	require.NotNil(t, carried)

	second, secondRec := newContext(carried)
	messages := Pop(second)
	require.Len(t, messages, 1)
	assert.Equal(t, "Welcome back.", messages[0].Text)

	// Pop clears the cookie so the banner shows once.
	cleared := false
	for _, cookie := range secondRec.Result().Cookies() {
		if cookie.Name == "flash" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestPopEmpty(t *testing.T) {
	c, rec := newContext()

	assert.Nil(t, Pop(c))
	assert.Empty(t, rec.Result().Cookies())
}

func TestPopIgnoresMalformedCookie(t *testing.T) {
	c, _ := newContext(&http.Cookie{Name: "flash", Value: "not-base64!!"})

	assert.Nil(t, Pop(c))
}
