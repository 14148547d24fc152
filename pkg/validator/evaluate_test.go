package validator_test

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/livevalidator/pkg/declaration"
	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
	"github.com/dmitrymomot/livevalidator/pkg/validator"
)

func TestEvaluateField(t *testing.T) {
	t.Parallel()

	t.Run("last failing clause wins", func(t *testing.T) {
		qty := field("qty", "abc")
		v, err := validator.New[*input](newForm(qty), validator.WithPresetRules(map[string]string{"qty": "numeric|min(:10)"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(qty))
		entry, ok := v.Store().Get("qty-id")
		require.True(t, ok)
		assert.Equal(t, "Please enter a value greater than or equal to 10.", entry.Message)
		assert.Equal(t, "min", entry.Rule)
		assert.Equal(t, "qty", entry.Field)
		assert.Same(t, qty, entry.Element)
	})

	t.Run("required message on empty even though later rule passes", func(t *testing.T) {
		email := field("email", "")
		v, err := validator.New[*input](newForm(email), validator.WithPresetRules(map[string]string{"email": "required|email"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(email))
		assert.Equal(t, "Sorry, but this field is required.", v.Message(email))
	})

	t.Run("message resolution ignores the field name unless overridden", func(t *testing.T) {
		// "email" collides with a rule name, "contact" does not
		email := field("email", "")
		contact := field("contact", "")
		decls := map[string]string{"email": "required|email", "contact": "required|email"}

		v, err := validator.New[*input](newForm(email, contact), validator.WithPresetRules(decls))
		require.NoError(t, err)
		assert.False(t, v.EvaluateForm())
		assert.Equal(t, "Sorry, but this field is required.", v.Message(email))
		assert.Equal(t, "Sorry, but this field is required.", v.Message(contact))

		contact.value = "nope"
		v.EvaluateField(contact)
		assert.Equal(t, "Please enter a valid email address (ex. 'mailbox@example.com').", v.Message(contact))

		v, err = validator.New[*input](newForm(email, contact),
			validator.WithPresetRules(decls),
			validator.WithWarningMessages(map[string]string{"email": "Use your work address."}),
		)
		require.NoError(t, err)
		v.EvaluateForm()
		assert.Equal(t, "Use your work address.", v.Message(email))
		assert.Equal(t, "Use your work address.", v.Message(contact), "rule template override")
	})

	t.Run("passing field clears its error", func(t *testing.T) {
		email := field("email", "nope")
		v, err := validator.New[*input](newForm(email), validator.WithPresetRules(map[string]string{"email": "required|email"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(email))
		assert.True(t, v.Store().Has("email-id"))

		email.value = "mailbox@example.com"
		assert.True(t, v.EvaluateField(email))
		assert.False(t, v.Store().Has("email-id"))
		assert.Equal(t, "", v.Message(email))
	})

	t.Run("undeclared field is valid and untouched", func(t *testing.T) {
		notes := field("notes", "")
		v, err := validator.New[*input](newForm(notes))
		require.NoError(t, err)

		assert.True(t, v.EvaluateField(notes))
		assert.Zero(t, v.Store().Len())
	})

	t.Run("custom predicate returning non-boolean is invalid", func(t *testing.T) {
		code := field("code", "x")
		v, err := validator.New[*input](newForm(code), validator.WithRule("code", declaration.Custom(func(string) any { return 1 })))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(code))
		entry, ok := v.Store().Get("code-id")
		require.True(t, ok)
		assert.Equal(t, messages.NewCatalog(nil).Base(), entry.Message)
		assert.Empty(t, entry.Rule)
	})

	t.Run("custom predicate true clears error", func(t *testing.T) {
		code := field("code", "bad")
		v, err := validator.New[*input](newForm(code), validator.WithRule("code", declaration.CustomBool(func(s string) bool { return s == "good" })))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(code))
		code.value = "good"
		assert.True(t, v.EvaluateField(code))
		assert.Zero(t, v.Store().Len())
	})

	t.Run("custom failure uses field override", func(t *testing.T) {
		code := field("code", "bad")
		v, err := validator.New[*input](newForm(code),
			validator.WithRule("code", declaration.CustomBool(func(string) bool { return false })),
			validator.WithWarningMessages(map[string]string{"code": "Wrong code."}),
		)
		require.NoError(t, err)

		v.EvaluateField(code)
		assert.Equal(t, "Wrong code.", v.Message(code))
	})

	t.Run("field override beats rule message", func(t *testing.T) {
		age := field("age", "5")
		v, err := validator.New[*input](newForm(age),
			validator.WithPresetRules(map[string]string{"age": "min(:18)"}),
			validator.WithWarningMessages(map[string]string{"age": "Adults only."}),
		)
		require.NoError(t, err)

		v.EvaluateField(age)
		assert.Equal(t, "Adults only.", v.Message(age))
	})

	t.Run("rule message is formatted with params", func(t *testing.T) {
		age := field("age", "15")
		v, err := validator.New[*input](newForm(age), validator.WithPresetRules(map[string]string{"age": "range(:1,10)"}))
		require.NoError(t, err)

		v.EvaluateField(age)
		assert.Equal(t, "Please enter a value no less than 1 and no more than 10.", v.Message(age))
	})

	t.Run("rule without message falls back to base", func(t *testing.T) {
		f := field("f", "x")
		v, err := validator.New[*input](newForm(f), validator.WithPresetRules(map[string]string{"f": "empty"}))
		require.NoError(t, err)

		v.EvaluateField(f)
		assert.Equal(t, "Sorry, but there is a problem with this field.", v.Message(f))
	})

	t.Run("unknown rule fails closed and logs", func(t *testing.T) {
		var buf bytes.Buffer
		f := field("f", "x")
		v, err := validator.New[*input](newForm(f),
			validator.WithPresetRules(map[string]string{"f": "required|nonexistent"}),
			validator.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(f))
		entry, _ := v.Store().Get("f-id")
		assert.Equal(t, "nonexistent", entry.Rule)
		assert.Equal(t, "Sorry, but there is a problem with this field.", entry.Message)
		assert.Contains(t, buf.String(), "unknown rule")
	})

	t.Run("malformed params mean unknown rule", func(t *testing.T) {
		f := field("f", "5")
		v, err := validator.New[*input](newForm(f), validator.WithPresetRules(map[string]string{"f": "range(:1, 10)"}))
		require.NoError(t, err)
		assert.False(t, v.EvaluateField(f))
	})

	t.Run("custom validation rule override", func(t *testing.T) {
		n := field("n", "3")
		v, err := validator.New[*input](newForm(n),
			validator.WithPresetRules(map[string]string{"n": "even"}),
			validator.WithValidationRules(map[string]rules.Predicate{
				"even": func(_ rules.Scope, value string, _ rules.Params) bool {
					i, err := strconv.Atoi(value)
					return value == "" || (err == nil && i%2 == 0)
				},
			}),
			validator.WithWarningMessages(map[string]string{"even": "Must be even."}),
		)
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(n))
		assert.Equal(t, "Must be even.", v.Message(n))
		n.value = "4"
		assert.True(t, v.EvaluateField(n))
	})

	t.Run("matches reads the other field", func(t *testing.T) {
		pw := field("password", "secret")
		confirm := field("confirm", "other")
		v, err := validator.New[*input](newForm(pw, confirm), validator.WithPresetRules(map[string]string{"confirm": "matches(:password)"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(confirm))
		assert.Equal(t, "Sorry, but this field must match password.", v.Message(confirm))

		confirm.value = "secret"
		assert.True(t, v.EvaluateField(confirm))
	})

	t.Run("accepted checks the form", func(t *testing.T) {
		terms := &input{id: "terms", name: "terms", value: "yes"}
		v, err := validator.New[*input](newForm(terms), validator.WithPresetRules(map[string]string{"terms": "accepted"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateField(terms))
		terms.checked = true
		assert.True(t, v.EvaluateField(terms))
	})

	t.Run("idempotent", func(t *testing.T) {
		a := field("a", "abc")
		v, err := validator.New[*input](newForm(a), validator.WithPresetRules(map[string]string{"a": "numeric|max(:3)"}))
		require.NoError(t, err)

		first := v.EvaluateField(a)
		snap := v.CurrentErrors()
		second := v.EvaluateField(a)
		assert.Equal(t, first, second)
		assert.Equal(t, snap, v.CurrentErrors())
	})

	t.Run("range and between bounds", func(t *testing.T) {
		cases := []struct {
			decl  string
			value string
			want  bool
		}{
			{"range(:1,10)", "15", false},
			{"between(:1,10)", "10", false},
			{"range(:1,10)", "5", true},
			{"between(:1,10)", "5", true},
		}
		for _, tc := range cases {
			f := field("n", tc.value)
			v, err := validator.New[*input](newForm(f), validator.WithPresetRules(map[string]string{"n": tc.decl}))
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.EvaluateField(f), "%s on %s", tc.decl, tc.value)
		}
	})
}

func TestEvaluateForm(t *testing.T) {
	t.Parallel()

	t.Run("valid when every declared field passes", func(t *testing.T) {
		form := newForm(field("email", "a@b.co"), field("notes", ""), field("age", "30"))
		v, err := validator.New[*input](form, validator.WithPresetRules(map[string]string{
			"email": "required|email",
			"age":   "numeric|range(:18,99)",
		}))
		require.NoError(t, err)

		assert.True(t, v.EvaluateForm())
		assert.NoError(t, v.Errors())
	})

	t.Run("invalid fields are all recorded", func(t *testing.T) {
		form := newForm(field("email", ""), field("age", "5"))
		v, err := validator.New[*input](form, validator.WithPresetRules(map[string]string{
			"email": "required|email",
			"age":   "numeric|range(:18,99)",
		}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateForm())
		assert.Equal(t, []string{"age-id", "email-id"}, v.Store().IDs())

		verrs := validator.ExtractValidationErrors(v.Errors())
		require.Len(t, verrs, 2)
		assert.True(t, verrs.Has("email"))
		assert.Equal(t, []string{"Sorry, but this field is required."}, verrs.Get("email"))
		assert.ErrorIs(t, v.Errors(), validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(v.Errors()))
	})

	t.Run("disabled fields are skipped", func(t *testing.T) {
		email := field("email", "")
		email.disabled = true
		v, err := validator.New[*input](newForm(email), validator.WithPresetRules(map[string]string{"email": "required"}))
		require.NoError(t, err)

		assert.True(t, v.EvaluateForm())
	})

	t.Run("disabling a failed field drops its error", func(t *testing.T) {
		email := field("email", "")
		v, err := validator.New[*input](newForm(email), validator.WithPresetRules(map[string]string{"email": "required"}))
		require.NoError(t, err)

		assert.False(t, v.EvaluateForm())
		require.Equal(t, 1, v.Store().Len())

		email.disabled = true
		assert.True(t, v.EvaluateForm())
		assert.Zero(t, v.Store().Len())
		assert.NoError(t, v.Errors())
	})

	t.Run("validators do not share stores", func(t *testing.T) {
		decl := validator.WithPresetRules(map[string]string{"email": "required"})
		v1, err := validator.New[*input](newForm(field("email", "")), decl)
		require.NoError(t, err)
		v2, err := validator.New[*input](newForm(field("email", "x")), decl)
		require.NoError(t, err)

		assert.False(t, v1.EvaluateForm())
		assert.True(t, v2.EvaluateForm())
		assert.Equal(t, 1, v1.Store().Len())
		assert.Zero(t, v2.Store().Len())
	})

	t.Run("verdict matches empty store", func(t *testing.T) {
		decls := []string{"required", "numeric", "numeric|min(:10)", "email", "required|maxlength(:3)", "list(:a,b,c)", "between(:1,10)"}
		rapid.Check(t, func(rt *rapid.T) {
			n := rapid.IntRange(1, 6).Draw(rt, "fields")
			var inputs []*input
			specs := make(map[string]string)
			for i := range n {
				name := "f" + strconv.Itoa(i)
				in := field(name, rapid.SampledFrom([]string{"", "a", "5", "15", "abc", "a@b.co"}).Draw(rt, "value"))
				in.disabled = rapid.Bool().Draw(rt, "disabled")
				inputs = append(inputs, in)
				if rapid.Bool().Draw(rt, "declared") {
					specs[name] = rapid.SampledFrom(decls).Draw(rt, "decl")
				}
			}
			v, err := validator.New[*input](newForm(inputs...), validator.WithPresetRules(specs))
			if err != nil {
				rt.Fatal(err)
			}
			got := v.EvaluateForm()
			if got != (v.Store().Len() == 0) {
				rt.Fatalf("verdict %v with %d stored errors", got, v.Store().Len())
			}
			if again := v.EvaluateForm(); again != got {
				rt.Fatalf("second pass changed verdict")
			}

			for _, in := range inputs {
				in.disabled = rapid.Bool().Draw(rt, "disabled again")
			}
			got = v.EvaluateForm()
			if got != (v.Store().Len() == 0) {
				rt.Fatalf("after toggling disabled: verdict %v with %d stored errors", got, v.Store().Len())
			}
			for _, id := range v.Store().IDs() {
				e, _ := v.Store().Get(id)
				if e.Element.disabled {
					rt.Fatalf("disabled field %s kept its error", id)
				}
			}
		})
	})
}
