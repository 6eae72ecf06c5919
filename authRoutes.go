package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route setup
func AuthRoutes(r *gin.Engine, customers *CustomerStore) {
	r.GET("/login", ShowLoginForm)
	r.POST("/login", func(c *gin.Context) {
		ProcessLogin(c, customers)
	})
	r.GET("/logout", ProcessLogout)
}

// =================== LOGIN ===================

type LoginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func ShowLoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Login form",
		"flash":   ConsumeFlashes(c),
	})
}

// ProcessLogin memeriksa kredensial dari form terhadap CustomerStore.
// Dua state yang bisa diamati: anonymous dan authenticated(email).
func ProcessLogin(c *gin.Context, customers *CustomerStore) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Invalid form data"})
		return
	}

	customer, found := customers.GetByEmail(input.Email)
	if !found {
		Flash(c, "No such email address.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// Perbandingan string plaintext, sengaja identik dengan sistem aslinya.
	// Bukan untuk produksi.
	if customer.Password != input.Password {
		Flash(c, "Incorrect password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := LoadSession(c)
	session.SetEmail(customer.Email)
	if err := SaveSession(c, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Failed to save session"})
		return
	}

	Flash(c, "Logged in.")
	c.Redirect(http.StatusFound, "/melons")
}

// =================== LOGOUT ===================

// ProcessLogout menghapus penanda login dari session. Logout saat masih
// anonymous diperlakukan sebagai no-op, tetap dengan pesan dan redirect.
func ProcessLogout(c *gin.Context) {
	session := LoadSession(c)
	session.ClearEmail()

	if session.Dirty() {
		if err := SaveSession(c, session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Failed to save session"})
			return
		}
	}

	Flash(c, "Logged out.")
	c.Redirect(http.StatusFound, "/melons")
}
