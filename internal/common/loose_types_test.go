package common

import (
	"encoding/json"
	"testing"
)

func TestLooseIntUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{`5`, 5},
		{`"5"`, 5},
		{`5.9`, 5},
		{`"5.9"`, 5},
		{`true`, 1},
		{`false`, 0},
		{`null`, 0},
		{`""`, 0},
		{`"garbage"`, 0},
	}

	for _, tc := range cases {
		var li LooseInt
		if err := json.Unmarshal([]byte(tc.input), &li); err != nil {
			t.Fatalf("Unmarshal(%s) errored: %v", tc.input, err)
		}
		if int(li) != tc.want {
			t.Errorf("LooseInt(%s) = %d, want %d", tc.input, li, tc.want)
		}
	}
}

func TestLooseBoolUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`"true"`, true},
		{`1`, true},
		{`"1"`, true},
		{`false`, false},
		{`0`, false},
		{`null`, false},
		{`"no"`, false},
	}

	for _, tc := range cases {
		var lb LooseBool
		if err := json.Unmarshal([]byte(tc.input), &lb); err != nil {
			t.Fatalf("Unmarshal(%s) errored: %v", tc.input, err)
		}
		if bool(lb) != tc.want {
			t.Errorf("LooseBool(%s) = %v, want %v", tc.input, lb, tc.want)
		}
	}
}

func TestLooseStringUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`"abc"`, "abc"},
		{`12.5`, "12.5"}, // numbers keep their literal text
		{`0`, "0"},
		{`null`, ""},
	}

	for _, tc := range cases {
		var ls LooseString
		if err := json.Unmarshal([]byte(tc.input), &ls); err != nil {
			t.Fatalf("Unmarshal(%s) errored: %v", tc.input, err)
		}
		if ls.String() != tc.want {
			t.Errorf("LooseString(%s) = %q, want %q", tc.input, ls, tc.want)
		}
	}
}
