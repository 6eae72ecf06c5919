package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAddToCart(t *testing.T) {
	s := &Session{}
	assert.False(t, s.HasCart())

	for i := 0; i < 4; i++ {
		s.AddToCart("sharlyn")
	}
	s.AddToCart("cren")

	assert.True(t, s.HasCart())
	assert.Equal(t, 4, s.Quantity("sharlyn"))
	assert.Equal(t, 1, s.Quantity("cren"))
	assert.Equal(t, 0, s.Quantity("sprite"))
	assert.True(t, s.Dirty())

	// urutan mengikuti add pertama kali
	assert.Equal(t, []string{"sharlyn", "cren"}, s.CartOrder)
}

func TestSessionClearEmailWhenAnonymousIsNoop(t *testing.T) {
	s := &Session{}
	s.ClearEmail()
	assert.False(t, s.LoggedIn())
	assert.False(t, s.Dirty())
}

func newSessionTestContext(t *testing.T, cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func TestSessionCookieRoundTrip(t *testing.T) {
	saveCtx, w := newSessionTestContext(t, nil)

	s := &Session{}
	s.AddToCart("sharlyn")
	s.AddToCart("sharlyn")
	s.AddToCart("cren")
	s.SetEmail("jane@hackbright.com")
	require.NoError(t, SaveSession(saveCtx, s))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	loadCtx, _ := newSessionTestContext(t, cookies)
	loaded := LoadSession(loadCtx)

	assert.Equal(t, 2, loaded.Quantity("sharlyn"))
	assert.Equal(t, 1, loaded.Quantity("cren"))
	assert.Equal(t, []string{"sharlyn", "cren"}, loaded.CartOrder)
	assert.Equal(t, "jane@hackbright.com", loaded.Email)
	assert.True(t, loaded.LoggedIn())
}

func TestLoadSessionWithoutCookie(t *testing.T) {
	c, _ := newSessionTestContext(t, nil)

	s := LoadSession(c)
	assert.False(t, s.HasCart())
	assert.False(t, s.LoggedIn())
}

func TestLoadSessionRejectsTamperedCookie(t *testing.T) {
	c, _ := newSessionTestContext(t, []*http.Cookie{
		{Name: sessionCookieName, Value: "not.a.token"},
	})

	s := LoadSession(c)
	assert.False(t, s.HasCart())
	assert.False(t, s.LoggedIn())
}

func TestFlashRoundTrip(t *testing.T) {
	setCtx, w := newSessionTestContext(t, nil)
	Flash(setCtx, "Logged in.")

	readCtx, readW := newSessionTestContext(t, w.Result().Cookies())
	messages := ConsumeFlashes(readCtx)
	assert.Equal(t, []string{"Logged in."}, messages)

	// consume harus menghapus cookie-nya
	var cleared bool
	for _, ck := range readW.Result().Cookies() {
		if ck.Name == flashCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)

	// tanpa cookie pending tidak ada pesan
	emptyCtx, _ := newSessionTestContext(t, nil)
	assert.Nil(t, ConsumeFlashes(emptyCtx))
}

// lastFlashCookie mengambil Set-Cookie flash terakhir dari response,
// sama seperti browser yang memakai nilai paling akhir.
func lastFlashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var last *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == flashCookieName {
			last = ck
		}
	}
	require.NotNil(t, last)
	return last
}

func TestFlashAccumulatesWithinOneRequest(t *testing.T) {
	setCtx, w := newSessionTestContext(t, nil)
	Flash(setCtx, "first")
	Flash(setCtx, "second")

	readCtx, _ := newSessionTestContext(t, []*http.Cookie{lastFlashCookie(t, w)})
	assert.Equal(t, []string{"first", "second"}, ConsumeFlashes(readCtx))
}

func TestFlashAccumulatesAcrossRequests(t *testing.T) {
	// dua flash di dua request berturut-turut tanpa render di antaranya
	firstCtx, w1 := newSessionTestContext(t, nil)
	Flash(firstCtx, "first")

	secondCtx, w2 := newSessionTestContext(t, w1.Result().Cookies())
	Flash(secondCtx, "second")

	readCtx, _ := newSessionTestContext(t, []*http.Cookie{lastFlashCookie(t, w2)})
	assert.Equal(t, []string{"first", "second"}, ConsumeFlashes(readCtx))
}
