package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName = "ubermelon_session"
	flashCookieName   = "ubermelon_flash"
	flashContextKey   = "pending_flash"
	sessionMaxAge     = 24 * time.Hour
)

// Inisialisasi secret key dari .env
var sessionSecret []byte

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ File .env tidak ditemukan, lanjut pakai environment bawaan")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Kelemahan yang memang dipertahankan: secret default yang gampang
		// ditebak, bukan untuk produksi.
		log.Println("⚠️ SESSION_SECRET tidak ditemukan, pakai secret default")
		secret = "this-should-be-something-unguessable"
	}
	sessionSecret = []byte(secret)
}

// SessionClaims sesuai payload cookie session
type SessionClaims struct {
	Cart      map[string]int `json:"cart,omitempty"`
	CartOrder []string       `json:"cart_order,omitempty"`
	Email     string         `json:"logged_in_customer_email,omitempty"`
	jwt.RegisteredClaims
}

// Session adalah state per-browser: shopping cart + penanda login.
// Seluruhnya hidup di cookie yang ditandatangani, tidak ada storage server-side.
type Session struct {
	Cart      map[string]int
	CartOrder []string // urutan melon sesuai add pertama kali
	Email     string   // kosong = anonymous
	dirty     bool
}

// HasCart membedakan "belum pernah ada cart" dari cart kosong.
func (s *Session) HasCart() bool {
	return s.Cart != nil
}

// AddToCart menaikkan quantity melon (mulai dari 1 kalau belum ada).
// Cart dibuat lazily saat add pertama dalam session.
func (s *Session) AddToCart(melonID string) {
	if s.Cart == nil {
		s.Cart = make(map[string]int)
	}
	if _, exists := s.Cart[melonID]; !exists {
		s.CartOrder = append(s.CartOrder, melonID)
	}
	s.Cart[melonID]++
	s.dirty = true
}

func (s *Session) Quantity(melonID string) int {
	return s.Cart[melonID]
}

func (s *Session) LoggedIn() bool {
	return s.Email != ""
}

func (s *Session) SetEmail(email string) {
	s.Email = email
	s.dirty = true
}

// ClearEmail menghapus penanda login. Logout saat anonymous bukan error,
// cukup no-op (cart tidak ikut dihapus).
func (s *Session) ClearEmail() {
	if s.Email != "" {
		s.Email = ""
		s.dirty = true
	}
}

func (s *Session) Dirty() bool {
	return s.dirty
}

// LoadSession membaca cookie session dari request. Cookie hilang, expired,
// atau tanda tangannya tidak cocok -> session anonymous baru, bukan error.
func LoadSession(c *gin.Context) *Session {
	tokenStr, err := c.Cookie(sessionCookieName)
	if err != nil || tokenStr == "" {
		return &Session{}
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("Session cookie error: %v\n", err)
		return &Session{}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return &Session{}
	}

	return &Session{
		Cart:      claims.Cart,
		CartOrder: claims.CartOrder,
		Email:     claims.Email,
	}
}

// SaveSession menandatangani state session dan menulisnya kembali ke cookie.
func SaveSession(c *gin.Context, s *Session) error {
	claims := SessionClaims{
		Cart:      s.Cart,
		CartOrder: s.CartOrder,
		Email:     s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionMaxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sessionSecret)
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookieName, signed, int(sessionMaxAge.Seconds()), "/", "", false, true)
	return nil
}

// =========================
// 💬 Flash Messages
// =========================
// Pesan satu kali pakai ala Flask: ditaruh di cookie sebelum redirect,
// dibaca lalu dihapus oleh halaman berikutnya.

// Flash menambahkan pesan ke daftar yang sudah pending, tidak menimpa:
// beberapa flash sebelum halaman berikutnya dirender harus terkumpul semua.
func Flash(c *gin.Context, message string) {
	messages := append(pendingFlashes(c), message)
	c.Set(flashContextKey, messages)

	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, string(raw), 300, "/", "", false, true)
}

// pendingFlashes mengambil pesan yang sudah antri: dari request yang sama
// (lewat context) atau dari request sebelumnya yang belum sempat dirender
// (lewat cookie).
func pendingFlashes(c *gin.Context) []string {
	if v, exists := c.Get(flashContextKey); exists {
		if messages, ok := v.([]string); ok {
			return messages
		}
	}

	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	var messages []string
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil
	}
	return messages
}

// ConsumeFlashes mengambil pesan flash yang pending dan langsung
// menghapus cookie-nya.
func ConsumeFlashes(c *gin.Context) []string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	c.Set(flashContextKey, []string(nil))

	var messages []string
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil
	}
	return messages
}
