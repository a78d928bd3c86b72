package termio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zafahi/tralashop/internal/adapter/termio"
)

func TestSurface_SetContent(t *testing.T) {
	t.Run("FlattensMarkupToIndentedLines", func(t *testing.T) {
		var out bytes.Buffer
		s := termio.New(&out)

		s.SetContent("products-grid",
			`<div class="product-name">AMD Ryzen 9 <b>7950X</b></div><p>In stock</p>`)

		assert.Equal(t, "[products-grid]\n  AMD Ryzen 9 7950X\n  In stock\n", out.String())
		assert.Contains(t, s.Content("products-grid"), "<div")
	})

	t.Run("EmptyMarkup", func(t *testing.T) {
		var out bytes.Buffer
		s := termio.New(&out)

		s.SetContent("search-suggestions", "")

		assert.Equal(t, "[search-suggestions]\n  (empty)\n", out.String())
	})
}

func TestSurface_SetText(t *testing.T) {
	var out bytes.Buffer
	s := termio.New(&out)

	s.SetText("cart-count", "3")

	assert.Equal(t, "[cart-count] 3\n", out.String())
	assert.Equal(t, "3", s.Content("cart-count"))
}

func TestSurface_Classes(t *testing.T) {
	t.Run("AddAndRemove", func(t *testing.T) {
		var out bytes.Buffer
		s := termio.New(&out)

		s.AddClass("cart-sidebar", "active")
		assert.True(t, s.HasClass("cart-sidebar", "active"))

		s.RemoveClass("cart-sidebar", "active")
		assert.False(t, s.HasClass("cart-sidebar", "active"))

		assert.Equal(t, "[cart-sidebar] +active\n[cart-sidebar] -active\n", out.String())
	})

	t.Run("DuplicateAddIsSilent", func(t *testing.T) {
		var out bytes.Buffer
		s := termio.New(&out)

		s.AddClass("body", "dark-theme")
		s.AddClass("body", "dark-theme")

		assert.Equal(t, "[body] +dark-theme\n", out.String())
	})

	t.Run("RemovingAbsentClassIsSilent", func(t *testing.T) {
		var out bytes.Buffer
		s := termio.New(&out)

		s.RemoveClass("body", "dark-theme")

		assert.Empty(t, out.String())
	})
}
