package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type emailForm struct {
	Email string `json:"email" validate:"required,simple-email"`
}

type cycleForm struct {
	Cycle string `json:"paymentCycle" validate:"required,is-payment-cycle"`
}

func TestSimpleEmailRule(t *testing.T) {
	v := New()

	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"staff@swiftconnect.pk", true},
		{"not-an-email", false},
		{"no@tld", false},
		{"spaces in@mail.com", false},
		{"", false}, // required
	}

	for _, tc := range cases {
		err := v.Validate(emailForm{Email: tc.email})
		if tc.ok {
			assert.NoError(t, err, "email %q должен проходить", tc.email)
		} else {
			assert.Error(t, err, "email %q должен отклоняться", tc.email)
		}
	}
}

func TestPaymentCycleRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(cycleForm{Cycle: "monthly"}))
	assert.NoError(t, v.Validate(cycleForm{Cycle: "three_months"}))
	assert.NoError(t, v.Validate(cycleForm{Cycle: "yearly"}))
	assert.Error(t, v.Validate(cycleForm{Cycle: "weekly"}))
}

func TestValidationErrorUsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(cycleForm{Cycle: "weekly"})
	vErr, ok := err.(*ValidationError)
	if assert.True(t, ok) {
		assert.Contains(t, vErr.Errors, "paymentCycle")
	}
}
