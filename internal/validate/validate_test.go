package validate

import "testing"

func TestRequiredFailsOnEmptyAndWhitespace(t *testing.T) {
	s := Schema{"name": {Required("name is required")}}

	for _, v := range []string{"", "   "} {
		errs := s.Validate(Values{"name": v})
		if errs == nil {
			t.Fatalf("value %q: expected error", v)
		}
		if errs["name"] != "name is required" {
			t.Fatalf("value %q: got %q", v, errs["name"])
		}
	}

	if errs := s.Validate(Values{"name": "jane"}); errs != nil {
		t.Fatalf("valid value: got %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	s := Schema{"email": {Email("invalid email")}}

	valid := []string{"a@x.com", "jane.doe@example.co.uk", ""}
	for _, v := range valid {
		if errs := s.Validate(Values{"email": v}); errs != nil {
			t.Errorf("%q: unexpected error %v", v, errs)
		}
	}

	invalid := []string{"nope", "a@b", "a b@x.com", "@x.com", "a@"}
	for _, v := range invalid {
		if errs := s.Validate(Values{"email": v}); errs == nil {
			t.Errorf("%q: expected error", v)
		}
	}
}

func TestFirstViolatedRuleWins(t *testing.T) {
	s := Schema{"phone": {
		Required("required"),
		Digits("digits only"),
		Len(10, "must be 10 digits"),
	}}

	cases := []struct {
		value string
		want  string
	}{
		{"", "required"},
		{"12a45", "digits only"},
		{"12345", "must be 10 digits"},
	}
	for _, tc := range cases {
		errs := s.Validate(Values{"phone": tc.value})
		if errs == nil {
			t.Fatalf("%q: expected error", tc.value)
		}
		if errs["phone"] != tc.want {
			t.Errorf("%q: got %q, want %q", tc.value, errs["phone"], tc.want)
		}
	}

	if errs := s.Validate(Values{"phone": "9876543210"}); errs != nil {
		t.Fatalf("valid phone: got %v", errs)
	}
}

func TestFieldsEvaluatedIndependently(t *testing.T) {
	s := Schema{
		"first": {Required("first required")},
		"last":  {Required("last required")},
	}

	errs := s.Validate(Values{})
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
}

func TestOptionalRulesPassOnEmpty(t *testing.T) {
	s := Schema{
		"middle": {MaxLen(1, "only one character allowed")},
		"phone":  {Digits("numeric"), Len(10, "10 digits")},
		"date":   {Date("bad date")},
	}

	if errs := s.Validate(Values{}); errs != nil {
		t.Fatalf("empty optional fields: got %v", errs)
	}

	errs := s.Validate(Values{"middle": "AB"})
	if errs["middle"] != "only one character allowed" {
		t.Fatalf("got %v", errs)
	}
}

func TestEqualToComparesFields(t *testing.T) {
	s := Schema{"confirm": {EqualTo("password", "passwords do not match")}}

	errs := s.Validate(Values{"password": "hunter22", "confirm": "hunter2"})
	if errs == nil {
		t.Fatal("expected mismatch error")
	}

	if errs := s.Validate(Values{"password": "hunter22", "confirm": "hunter22"}); errs != nil {
		t.Fatalf("matching values: got %v", errs)
	}
}

func TestTrueRule(t *testing.T) {
	s := Schema{"terms": {True("you must accept the terms")}}

	for _, v := range []string{"", "false", "yes"} {
		if errs := s.Validate(Values{"terms": v}); errs == nil {
			t.Errorf("%q: expected error", v)
		}
	}

	if errs := s.Validate(Values{"terms": "true"}); errs != nil {
		t.Fatalf("accepted terms: got %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	s := Schema{"birth_date": {Date("must be YYYY-MM-DD")}}

	if errs := s.Validate(Values{"birth_date": "1990-06-15"}); errs != nil {
		t.Fatalf("valid date: got %v", errs)
	}

	for _, v := range []string{"15/06/1990", "1990-13-01", "yesterday"} {
		if errs := s.Validate(Values{"birth_date": v}); errs == nil {
			t.Errorf("%q: expected error", v)
		}
	}
}

func TestOneOfRule(t *testing.T) {
	s := Schema{"gender": {OneOf([]string{"Male", "Female"}, "unknown gender")}}

	if errs := s.Validate(Values{"gender": "Male"}); errs != nil {
		t.Fatalf("valid option: got %v", errs)
	}
	if errs := s.Validate(Values{"gender": "Other"}); errs == nil {
		t.Fatal("expected error for unknown option")
	}
}

func TestErrorsImplementsError(t *testing.T) {
	errs := Errors{"email": "invalid email", "phone": "10 digits"}

	msg := errs.Error()
	if msg == "" {
		t.Fatal("empty error string")
	}
	// deterministic field order
	if msg != errs.Error() {
		t.Fatal("error string not stable")
	}
}

func TestMinLenCountsRunes(t *testing.T) {
	s := Schema{"password": {MinLen(6, "too short")}}

	if errs := s.Validate(Values{"password": "абвгде"}); errs != nil {
		t.Fatalf("6 runes: got %v", errs)
	}
	if errs := s.Validate(Values{"password": "abc12"}); errs == nil {
		t.Fatal("5 chars: expected error")
	}
}
