package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("substitutes params in order", func(t *testing.T) {
		assert.Equal(t, "Need 5 and 10", messages.Format("Need {0} and {1}", rules.With("5,10")))
	})

	t.Run("absent params leave template unchanged", func(t *testing.T) {
		assert.Equal(t, "Need {0}", messages.Format("Need {0}", rules.NoParams))
	})

	t.Run("out of range placeholder is kept", func(t *testing.T) {
		assert.Equal(t, "Need 5 and {1}", messages.Format("Need {0} and {1}", rules.With("5")))
	})

	t.Run("only first occurrence is replaced", func(t *testing.T) {
		assert.Equal(t, "a {0}", messages.Format("{0} {0}", rules.With("a")))
	})

	t.Run("extra params are ignored", func(t *testing.T) {
		assert.Equal(t, "x", messages.Format("x", rules.With("1,2,3")))
	})

	t.Run("placeholder free template is stable", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			tmpl := rapid.StringMatching(`[a-zA-Z .]{0,30}`).Draw(rt, "template")
			raw := rapid.StringMatching(`[\w\-,]{0,12}`).Draw(rt, "params")
			if got := messages.Format(tmpl, rules.With(raw)); got != tmpl {
				rt.Fatalf("got %q, want %q", got, tmpl)
			}
		})
	})

	t.Run("every in-range placeholder is filled", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			params := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,5}`), 1, 5).Draw(rt, "params")
			var b strings.Builder
			for i := range params {
				b.WriteString("{" + string(rune('0'+i)) + "} ")
			}
			got := messages.Format(b.String(), rules.With(strings.Join(params, ",")))
			if got != strings.Join(params, " ")+" " {
				rt.Fatalf("got %q", got)
			}
		})
	})
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		c := messages.NewCatalog(nil)
		tmpl, ok := c.Lookup("required")
		assert.True(t, ok)
		assert.Equal(t, "Sorry, but this field is required.", tmpl)
		assert.Equal(t, "Sorry, but there is a problem with this field.", c.Base())
	})

	t.Run("override replaces default without touching shared table", func(t *testing.T) {
		c := messages.NewCatalog(map[string]string{"required": "Fill me in."})
		tmpl, _ := c.Lookup("required")
		assert.Equal(t, "Fill me in.", tmpl)
		assert.Equal(t, "Sorry, but this field is required.", messages.Defaults()["required"])
	})

	t.Run("resolve prefers field override", func(t *testing.T) {
		c := messages.NewCatalog(map[string]string{"age": "Tell us your age."})
		assert.Equal(t, "Tell us your age.", c.Resolve("age", "min", rules.With("18")))
	})

	t.Run("resolve formats rule message", func(t *testing.T) {
		c := messages.NewCatalog(nil)
		assert.Equal(t, "Please enter a value greater than or equal to 18.", c.Resolve("age", "min", rules.With("18")))
	})

	t.Run("built-in templates never act as field overrides", func(t *testing.T) {
		c := messages.NewCatalog(nil)
		_, ok := c.FieldOverride("email")
		assert.False(t, ok)
		assert.Equal(t, "Sorry, but this field is required.", c.Resolve("email", "required", rules.NoParams))
		assert.Equal(t, "Sorry, but this field is required.", c.Resolve("contact", "required", rules.NoParams))
	})

	t.Run("caller keys override fields named after rules", func(t *testing.T) {
		c := messages.NewCatalog(map[string]string{"email": "Use your work address."})
		assert.Equal(t, "Use your work address.", c.Resolve("email", "required", rules.NoParams))
		assert.Equal(t, "Sorry, but this field is required.", c.Resolve("contact", "required", rules.NoParams))
	})

	t.Run("resolve falls back to base", func(t *testing.T) {
		c := messages.NewCatalog(nil)
		assert.Equal(t, c.Base(), c.Resolve("age", "unknown_rule", rules.NoParams))
		assert.Equal(t, c.Base(), c.Resolve("age", "", rules.NoParams))
		assert.Equal(t, c.Base(), c.Resolve("age", "empty", rules.NoParams))
	})

	t.Run("nil catalog falls back to default base", func(t *testing.T) {
		var c *messages.Catalog
		assert.Equal(t, "Sorry, but there is a problem with this field.", c.Base())
	})
}
