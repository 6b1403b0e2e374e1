package util

import (
	"testing"
)

func TestValidateAmount_Positive(t *testing.T) {
	testCases := []float64{0.01, 1.0, 100.5, 9999999.99}

	for _, amount := range testCases {
		if err := ValidateAmount(amount); err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_NonPositive(t *testing.T) {
	testCases := []float64{0, -0.01, -100, -9999.99}

	for _, amount := range testCases {
		if err := ValidateAmount(amount); err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	if err := ValidateAmount(10000000); err == nil {
		t.Error("ValidateAmount(10000000) error = nil, want error")
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2025-08-29"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}

	invalid := []string{"", "2025-13-01", "29-08-2025", "2025/08/29", "not-a-date"}
	for _, d := range invalid {
		if err := ValidateDate(d); err == nil {
			t.Errorf("ValidateDate(%q) error = nil, want error", d)
		}
	}
}

func TestValidateCategoryName(t *testing.T) {
	if err := ValidateCategoryName("Groceries"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateCategoryName(""); err == nil {
		t.Error("empty name should be rejected")
	}
	long := make([]byte, 41)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateCategoryName(string(long)); err == nil {
		t.Error("overlong name should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", e, err)
		}
	}

	invalid := []string{"", "nodomain", "@missing.local", "two@@ats.com", "spa ce@x.com"}
	for _, e := range invalid {
		if err := ValidateEmail(e); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", e)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"bob", "user_42", "smoke_ab12_20250829"}
	for _, u := range valid {
		if err := ValidateUsername(u); err != nil {
			t.Errorf("ValidateUsername(%q) error = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "ab", "UPPER", "has space", "dash-ed"}
	for _, u := range invalid {
		if err := ValidateUsername(u); err == nil {
			t.Errorf("ValidateUsername(%q) error = nil, want error", u)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Passw0rd!"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}

	invalid := []string{"", "short1", "nodigitshere", "12345678"}
	for _, p := range invalid {
		if err := ValidatePassword(p); err == nil {
			t.Errorf("ValidatePassword(%q) error = nil, want error", p)
		}
	}
}
