package utils

import "testing"

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"Abebe Kebede", "Abebe", "Kebede"},
		{"Abebe Kebede Alemu", "Abebe", "Kebede Alemu"},
		{"  Abebe   Kebede ", "Abebe", "Kebede"},
		{"Abebe", "Abebe", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		first, last := SplitName(c.in)
		if first != c.first || last != c.last {
			t.Fatalf("SplitName(%q) = (%q, %q), want (%q, %q)", c.in, first, last, c.first, c.last)
		}
	}
}

func TestDemoEmail(t *testing.T) {
	if got := DemoEmail("+251911234567"); got != "251911234567@demo.com" {
		t.Fatalf("DemoEmail stripped wrong, got %s", got)
	}
	if got := DemoEmail(" 0911234567 "); got != "0911234567@demo.com" {
		t.Fatalf("DemoEmail should trim whitespace, got %s", got)
	}
}

func TestFormatBirr(t *testing.T) {
	if got := FormatBirr(850); got != "850 ETB" {
		t.Fatalf("whole amount should drop decimals, got %s", got)
	}
	if got := FormatBirr(850.5); got != "850.50 ETB" {
		t.Fatalf("fractional amount keeps two decimals, got %s", got)
	}
}

func TestParsePrice(t *testing.T) {
	v, err := ParsePrice(" 850 ")
	if err != nil || v != 850 {
		t.Fatalf("ParsePrice(850) = %v, %v", v, err)
	}
	if _, err := ParsePrice(""); err == nil {
		t.Fatalf("empty price must error")
	}
	if _, err := ParsePrice("abc"); err == nil {
		t.Fatalf("non-numeric price must error")
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-01-15") {
		t.Fatalf("well-formed date rejected")
	}
	for _, bad := range []string{"15-01-2024", "2024/01/15", "2024-13-01", ""} {
		if ValidDate(bad) {
			t.Fatalf("malformed date accepted: %s", bad)
		}
	}
}
