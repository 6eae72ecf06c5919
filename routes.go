// Semuanya masih dalam package main
package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// =======================
// 🧩 Helper Functions
// =======================

// PriceCart menghitung isi cart: resolve tiap melon lewat katalog,
// line_total = price * qty, lalu diakumulasi jadi order_total.
// Iterasi mengikuti urutan add pertama kali, bukan urutan map.
// Entry yang menunjuk melon yang sudah tidak ada di katalog adalah
// pelanggaran invariant (cookie basi), bukan kondisi normal.
func PriceCart(s *Session, melons *MelonStore) ([]CartLineModel, float64, error) {
	lines := make([]CartLineModel, 0, len(s.CartOrder))
	var orderTotal float64

	for _, melonID := range s.CartOrder {
		melon, found := melons.GetByID(melonID)
		if !found {
			return nil, 0, fmt.Errorf("cart references unknown melon %q", melonID)
		}
		qty := s.Quantity(melonID)
		lineTotal := melon.Price * float64(qty)
		orderTotal += lineTotal
		lines = append(lines, CartLineModel{
			Melon:     melon,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
	}

	return lines, orderTotal, nil
}

// =========================
// 🏠 Homepage
// =========================
func PageRoutes(r *gin.Engine) {
	r.GET("/", ShowHomepage)
}

func ShowHomepage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Welcome to Ubermelon",
		"flash":   ConsumeFlashes(c),
	})
}

// =========================
// 🍈 Melon Catalog
// =========================
func MelonRoutes(r *gin.Engine, melons *MelonStore) {
	r.GET("/melons", func(c *gin.Context) {
		ListMelons(c, melons)
	})
	r.GET("/melon/:id", func(c *gin.Context) {
		ShowMelon(c, melons)
	})
}

// ++++++++++++++++++++++++
//
//	Melons LIST
//
// +++++++++++++++++++++++++
func ListMelons(c *gin.Context, melons *MelonStore) {
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ All melons",
		"data":    melons.GetAll(),
		"flash":   ConsumeFlashes(c),
	})
}

// ++++++++++++++++++++++++
//
//	Melon DETAIL
//
// +++++++++++++++++++++++++
func ShowMelon(c *gin.Context, melons *MelonStore) {
	melonID := c.Param("id")

	melon, found := melons.GetByID(melonID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "❌ No such melon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Melon detail",
		"data":    melon,
		"flash":   ConsumeFlashes(c),
	})
}

// =========================
// 🛒 Shopping Cart
// =========================
func CartRoutes(r *gin.Engine, melons *MelonStore) {
	r.GET("/add_to_cart/:id", func(c *gin.Context) {
		AddMelonToCart(c, melons)
	})
	r.GET("/cart", func(c *gin.Context) {
		ShowShoppingCart(c, melons)
	})
}

// ++++++++++++++++++++++++
//
//	Cart ADD
//
// +++++++++++++++++++++++++
func AddMelonToCart(c *gin.Context, melons *MelonStore) {
	melonID := c.Param("id")

	// Fail fast: id yang tidak ada di katalog ditolak di sini,
	// tidak dibiarkan meledak nanti saat cart dihitung.
	if _, found := melons.GetByID(melonID); !found {
		Flash(c, "No such melon.")
		c.Redirect(http.StatusFound, "/melons")
		return
	}

	session := LoadSession(c)
	session.AddToCart(melonID)

	if err := SaveSession(c, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Failed to save session"})
		return
	}

	Flash(c, "Melon successfully added to cart.")
	c.Redirect(http.StatusFound, "/cart")
}

// ++++++++++++++++++++++++
//
//	Cart VIEW
//
// +++++++++++++++++++++++++
func ShowShoppingCart(c *gin.Context, melons *MelonStore) {
	session := LoadSession(c)

	// Belum pernah ada cart di session ini: jalur "cart is empty",
	// bukan render nol item.
	if !session.HasCart() {
		Flash(c, "Cart is empty...")
		c.Redirect(http.StatusFound, "/melons")
		return
	}

	lines, orderTotal, err := PriceCart(session, melons)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Shopping cart",
		"data": gin.H{
			"melons":      lines,
			"order_total": orderTotal,
		},
		"flash": ConsumeFlashes(c),
	})
}

// =========================
// 💳 Checkout (stub)
// =========================
func CheckoutRoutes(r *gin.Engine) {
	r.GET("/checkout", Checkout)
}

func Checkout(c *gin.Context) {
	Flash(c, "Sorry! Checkout will be implemented in a future version.")
	c.Redirect(http.StatusFound, "/melons")
}
