package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("contains every built-in", func(t *testing.T) {
		reg, err := rules.NewRegistry(nil)
		require.NoError(t, err)

		for _, name := range []string{
			"empty", "required", "alphanumeric", "alphabetic", "numeric", "email",
			"zip", "state_usa", "phone_usa", "date", "year", "url", "money_usa",
			"money_euro", "creditcard", "matches", "different", "min", "max",
			"range", "between", "minlength", "maxlength", "list", "excludes",
			"accepted", "before", "after",
		} {
			assert.True(t, reg.Has(name), name)
		}
		assert.Len(t, reg.Names(), 28)
		assert.IsNonDecreasing(t, reg.Names())
	})

	t.Run("override replaces built-in without touching defaults", func(t *testing.T) {
		alwaysFalse := func(rules.Scope, string, rules.Params) bool { return false }
		reg, err := rules.NewRegistry(map[string]rules.Predicate{"numeric": alwaysFalse})
		require.NoError(t, err)

		pred, ok := reg.Resolve("numeric")
		require.True(t, ok)
		assert.False(t, pred(reg.Scope(nil), "42", rules.NoParams))

		fresh := rules.MustRegistry(nil)
		pred, ok = fresh.Resolve("numeric")
		require.True(t, ok)
		assert.True(t, pred(fresh.Scope(nil), "42", rules.NoParams))
	})

	t.Run("sibling lookups go through the merged table", func(t *testing.T) {
		reg := rules.MustRegistry(map[string]rules.Predicate{
			"numeric": func(rules.Scope, string, rules.Params) bool { return false },
		})
		pred, _ := reg.Resolve("min")
		assert.False(t, pred(reg.Scope(nil), "50", rules.With("10")))
	})

	t.Run("adds new rule", func(t *testing.T) {
		reg := rules.MustRegistry(map[string]rules.Predicate{
			"yes": func(_ rules.Scope, v string, _ rules.Params) bool { return v == "" || v == "yes" },
		})
		assert.True(t, reg.Has("yes"))
		assert.Len(t, reg.Names(), 29)
	})

	t.Run("rejects nil predicate", func(t *testing.T) {
		_, err := rules.NewRegistry(map[string]rules.Predicate{"broken": nil})
		assert.ErrorIs(t, err, rules.ErrInvalidRule)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := rules.NewRegistry(map[string]rules.Predicate{"": rules.Required})
		assert.ErrorIs(t, err, rules.ErrInvalidRule)
	})

	t.Run("unknown name does not resolve", func(t *testing.T) {
		reg := rules.MustRegistry(nil)
		_, ok := reg.Resolve("nope")
		assert.False(t, ok)
	})

	t.Run("defaults returns a copy", func(t *testing.T) {
		d := rules.Defaults()
		delete(d, "required")
		assert.Contains(t, rules.Defaults(), "required")
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	t.Run("zero scope is safe", func(t *testing.T) {
		var s rules.Scope
		assert.False(t, s.Check("numeric", "1", rules.NoParams))
		_, ok := s.FieldValue("x")
		assert.False(t, ok)
		assert.False(t, s.IsChecked("x"))
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	assert.Nil(t, rules.NoParams.List())
	assert.Equal(t, []string{"1", "10"}, rules.With("1,10").List())
	assert.Equal(t, "", rules.NoParams.String())

	v, ok := rules.With("a,b").At(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = rules.With("a").At(3)
	assert.False(t, ok)
}

func TestEmptyValuePassThrough(t *testing.T) {
	t.Parallel()

	reg := rules.MustRegistry(nil)
	form := fakeForm{values: map[string]string{"other": "x"}}

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.SampledFrom(reg.Names()).Draw(rt, "rule")
		raw := rapid.StringMatching(`[\w\-,]{0,12}`).Draw(rt, "params")
		present := rapid.Bool().Draw(rt, "present")

		pred, ok := reg.Resolve(name)
		if !ok {
			rt.Fatalf("rule %q not resolvable", name)
		}
		got := pred(reg.Scope(form), "", rules.Params{Raw: raw, Present: present})
		if name == "required" {
			if got {
				rt.Fatalf("required passed on empty value")
			}
			return
		}
		if !got {
			rt.Fatalf("rule %q rejected empty value with params %q", name, raw)
		}
	})
}

type fakeForm struct {
	values  map[string]string
	checked map[string]bool
}

func (f fakeForm) FieldValue(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f fakeForm) IsChecked(value string) bool {
	return f.checked[value]
}
