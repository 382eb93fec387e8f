package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestMessages_For(t *testing.T) {
	t.Parallel()
	m := form.DefaultMessages()

	tests := []struct {
		kind form.Kind
		code validator.Code
		want string
	}{
		{form.KindEmail, validator.CodeRequired, m.Required},
		{form.KindEmail, validator.CodeFormat, m.Email},
		{form.KindUsername, validator.CodeFormat, m.Username},
		{form.KindBirthdate, validator.CodeFormat, m.Birthdate},
		{form.KindGenericRequired, validator.CodeFormat, m.Format},
		{form.KindConfirmPassword, validator.CodePasswordMismatch, m.PasswordMismatch},
		{form.KindTerms, validator.CodeTermsNotAccepted, m.TermsNotAccepted},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.code), func(t *testing.T) {
			t.Parallel()
			got := m.For(tt.kind, validator.ValidationError{Code: tt.code})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessages_Merge(t *testing.T) {
	t.Parallel()

	m := form.DefaultMessages().Merge(form.Messages{
		Email:        "Неверный email",
		StrengthWeak: "Слабый пароль",
	})
	assert.Equal(t, "Неверный email", m.Email)
	assert.Equal(t, "Слабый пароль", m.StrengthWeak)
	assert.Equal(t, form.DefaultMessages().Required, m.Required)
}

func TestMessages_StrengthLabel(t *testing.T) {
	t.Parallel()
	m := form.DefaultMessages()

	assert.Equal(t, "Weak password", m.StrengthLabel(validator.TierWeak))
	assert.Equal(t, "Medium password", m.StrengthLabel(validator.TierMedium))
	assert.Equal(t, "Good password", m.StrengthLabel(validator.TierGood))
	assert.Equal(t, "Excellent password!", m.StrengthLabel(validator.TierExcellent))
}

func TestParseChecked(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"1", "on", "true", "yes", "checked", "TRUE", " On "} {
		assert.True(t, form.ParseChecked(raw), raw)
	}
	for _, raw := range []string{"", "0", "off", "false", "no"} {
		assert.False(t, form.ParseChecked(raw), raw)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := form.ParseKind("confirm_password")
	assert.NoError(t, err)
	assert.Equal(t, form.KindConfirmPassword, k)
	assert.True(t, form.KindTerms.Checkbox())
	assert.False(t, form.KindEmail.Checkbox())

	_, err = form.ParseKind("phone")
	assert.ErrorIs(t, err, form.ErrUnsupportedKind)
}
