package importer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
		want  string
	}{
		{"well formed", "2024-03-15", true, "2024-03-15"},
		{"empty", "", false, ""},
		{"wrong layout", "15/03/2024", false, ""},
		{"impossible day", "2024-13-45", false, ""},
		{"garbage", "not a date", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidDate(tc.input)
			if got.Valid != tc.valid {
				t.Fatalf("ValidDate(%q).Valid = %v, want %v", tc.input, got.Valid, tc.valid)
			}
			if tc.valid && got.Time.Format("2006-01-02") != tc.want {
				t.Errorf("ValidDate(%q) = %s, want %s", tc.input, got.Time.Format("2006-01-02"), tc.want)
			}
		})
	}
}

func TestValidDecimal(t *testing.T) {
	def := decimal.Zero

	if got := ValidDecimal("1.5", def); !got.Equal(decimal.NewFromFloat(1.5)) {
		t.Errorf("ValidDecimal(\"1.5\") = %s, want 1.5", got)
	}
	if got := ValidDecimal("0", def); !got.Equal(decimal.Zero) {
		t.Errorf("ValidDecimal(\"0\") = %s, want 0", got)
	}
	if got := ValidDecimal("", def); !got.Equal(def) {
		t.Errorf("ValidDecimal(\"\") = %s, want default", got)
	}
	if got := ValidDecimal("abc", def); !got.Equal(def) {
		t.Errorf("ValidDecimal(\"abc\") = %s, want default", got)
	}

	other := decimal.NewFromInt(7)
	if got := ValidDecimal("bogus", other); !got.Equal(other) {
		t.Errorf("ValidDecimal(\"bogus\", 7) = %s, want 7", got)
	}
}

func TestValidInteger(t *testing.T) {
	if got := ValidInteger("42"); !got.Valid || got.Int64 != 42 {
		t.Errorf("ValidInteger(\"42\") = %+v, want 42", got)
	}

	// "0" is a real value, not an absence marker.
	if got := ValidInteger("0"); !got.Valid || got.Int64 != 0 {
		t.Errorf("ValidInteger(\"0\") = %+v, want valid 0", got)
	}

	if got := ValidInteger(""); got.Valid {
		t.Errorf("ValidInteger(\"\") = %+v, want null", got)
	}
	if got := ValidInteger("12.5"); got.Valid {
		t.Errorf("ValidInteger(\"12.5\") = %+v, want null", got)
	}
	if got := ValidInteger("xyz"); got.Valid {
		t.Errorf("ValidInteger(\"xyz\") = %+v, want null", got)
	}
}

func TestValidTime(t *testing.T) {
	if got := ValidTime("1130"); !got.Valid || got.Int64 != 1130 {
		t.Errorf("ValidTime(\"1130\") = %+v, want 1130", got)
	}
	if got := ValidTime(""); got.Valid {
		t.Errorf("ValidTime(\"\") = %+v, want null", got)
	}
	if got := ValidTime("11:30"); got.Valid {
		t.Errorf("ValidTime(\"11:30\") = %+v, want null", got)
	}
}
