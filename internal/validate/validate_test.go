package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{"admin@shophub.com", "a@b.co", "first.last@sub.domain.org"}
	invalid := []string{"", "no-at.com", "a@b", "spaces in@mail.com", "@missing.local"}

	for _, s := range valid {
		if !Email(s) {
			t.Errorf("Email(%q) should be valid", s)
		}
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("Email(%q) should be invalid", s)
		}
	}
}

func TestPassword(t *testing.T) {
	valid := []string{"Admin123", "Str0ngPass", "Aa1!Aa1!"}
	invalid := []string{"short1A", "alllowercase1", "ALLUPPER1", "NoDigitsHere", "has spaces A1"}

	for _, s := range valid {
		if !Password(s) {
			t.Errorf("Password(%q) should be valid", s)
		}
	}
	for _, s := range invalid {
		if Password(s) {
			t.Errorf("Password(%q) should be invalid", s)
		}
	}
}

func TestURL(t *testing.T) {
	if !URL("https://fakestoreapi.com/img/81fPKd-2AYL.jpg") {
		t.Error("absolute https URL should be valid")
	}
	if URL("not a url") || URL("/relative/path") {
		t.Error("non-absolute values should be invalid")
	}
}

func TestRequiredAndMinLength(t *testing.T) {
	if Required("   ") {
		t.Error("blank string is not required-satisfying")
	}
	if !Required(" x ") {
		t.Error("non-blank string satisfies Required")
	}
	if !MinLength("  abcd  ", 4) || MinLength("abc", 4) {
		t.Error("MinLength should trim before measuring")
	}
}

func TestNumericAndRanges(t *testing.T) {
	if !Numeric("19.99") || Numeric("12x") {
		t.Error("Numeric misclassified input")
	}
	if !PositiveNumber(0.01) || PositiveNumber(0) {
		t.Error("PositiveNumber boundary wrong")
	}
	if !InRange(5, 0, 10) || !InRange(0, 0, 10) || !InRange(10, 0, 10) || InRange(11, 0, 10) {
		t.Error("InRange must be inclusive on both ends")
	}
}
