package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@example.co.uk", true},
		{"user+tag@example.io", true},
		{"u@d.co", true},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false}, // No TLD
		{"user @example.com", false},
		{"user@exa mple.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestMissingFields(t *testing.T) {
	errs := []ValidationError{
		{Field: "firstName", Tag: "required"},
		{Field: "email", Tag: "email"},
		{Field: "phone", Tag: "required"},
	}

	missing := MissingFields(errs)
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing fields, got %d", len(missing))
	}
	if missing[0] != "firstName" || missing[1] != "phone" {
		t.Errorf("unexpected missing fields: %v", missing)
	}
}
