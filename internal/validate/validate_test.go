package validate

import (
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Form
// ---------------------------------------------------------------------------

func validInput() model.FormInput {
	return model.FormInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi there",
		Message: "This message is long enough.",
	}
}

func TestForm_AllValid(t *testing.T) {
	errs := Form(validInput())
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestForm_AllFieldsEmpty(t *testing.T) {
	errs := Form(model.FormInput{})
	want := map[string]string{
		"name":    ErrRequired,
		"email":   ErrRequired,
		"subject": ErrRequired,
		"message": ErrRequired,
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for field, code := range want {
		if errs[field] != code {
			t.Errorf("field %s: expected %q, got %q", field, code, errs[field])
		}
	}
}

func TestForm_WhitespaceOnlyCountsAsEmpty(t *testing.T) {
	in := validInput()
	in.Name = "   "
	in.Subject = "\t\n"
	errs := Form(in)
	if errs["name"] != ErrRequired {
		t.Errorf("expected name required, got %v", errs)
	}
	if errs["subject"] != ErrRequired {
		t.Errorf("expected subject required, got %v", errs)
	}
}

func TestForm_EmailShape(t *testing.T) {
	cases := []struct {
		email string
		code  string
	}{
		{"jo@x.com", ""},
		{"a.b+c@sub.domain.org", ""},
		{"no-at-sign", ErrInvalidFormat},
		{"two@@x.com", ErrInvalidFormat},
		{"no@tld", ErrInvalidFormat},
		{"spaces in@x.com", ErrInvalidFormat},
		{"@x.com", ErrInvalidFormat},
		{"jo@.com", ErrInvalidFormat},
		{"", ErrRequired},
		{"   ", ErrRequired},
	}
	for _, c := range cases {
		in := validInput()
		in.Email = c.email
		errs := Form(in)
		if errs["email"] != c.code {
			t.Errorf("email %q: expected code %q, got %q", c.email, c.code, errs["email"])
		}
	}
}

func TestForm_MessageTooShort(t *testing.T) {
	in := validInput()
	in.Message = "short"
	errs := Form(in)
	if errs["message"] != ErrTooShort {
		t.Errorf("expected too_short, got %v", errs)
	}

	// Exactly at the minimum after trim passes.
	in.Message = "  1234567890  "
	if errs := Form(in); errs["message"] != "" {
		t.Errorf("expected 10-char trimmed message to pass, got %v", errs)
	}
}

func TestForm_MessageTooLong(t *testing.T) {
	in := validInput()
	in.Message = strings.Repeat("a", MaxMessageLength+1)
	errs := Form(in)
	if errs["message"] != ErrTooLong {
		t.Errorf("expected too_long, got %v", errs)
	}
}

func TestForm_ErrorsDoNotShortCircuit(t *testing.T) {
	errs := Form(model.FormInput{
		Name:    "",
		Email:   "a@b.com",
		Subject: "Hi",
		Message: "short",
	})
	if errs["name"] != ErrRequired {
		t.Errorf("expected name required, got %v", errs)
	}
	if errs["message"] != ErrTooShort {
		t.Errorf("expected message too_short, got %v", errs)
	}
	if len(errs) != 2 {
		t.Errorf("expected exactly 2 errors, got %v", errs)
	}
}

// ---------------------------------------------------------------------------
// Sanitize
// ---------------------------------------------------------------------------

func TestSanitize_StripsAngleBracketsAndTrims(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  hello  ", "hello"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"a < b > c", "a  b  c"},
		{"plain", "plain"},
		{"", ""},
		{"<>", ""},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"  hello  ",
		"<  padded  >",
		"< a >< b >",
		"\t<x>\n",
		"already clean",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeForm_AppliesToEveryField(t *testing.T) {
	got := SanitizeForm(model.FormInput{
		Name:    " <Jo> ",
		Email:   " jo@x.com ",
		Subject: "<Hi>",
		Message: "  body <b>text</b>  ",
	})
	if got.Name != "Jo" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Email != "jo@x.com" {
		t.Errorf("email: got %q", got.Email)
	}
	if got.Subject != "Hi" {
		t.Errorf("subject: got %q", got.Subject)
	}
	if got.Message != "body btext/b" {
		t.Errorf("message: got %q", got.Message)
	}
}
