package areacode

import "testing"

func TestStateForCode(t *testing.T) {
	cases := []struct {
		code  string
		state string
	}{
		{"212", "New York"},
		{"919", "North Carolina"},
		{"415", "California"},
		{"202", "District of Columbia"},
		{"907", "Alaska"},
	}
	for _, tc := range cases {
		got, ok := StateForCode(tc.code)
		if !ok || got != tc.state {
			t.Errorf("StateForCode(%s) = %q, %v; want %q", tc.code, got, ok, tc.state)
		}
	}
	if _, ok := StateForCode("000"); ok {
		t.Error("unknown code must not resolve")
	}
}

func TestNormalizeState(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"nc", "North Carolina"},
		{"NC", "North Carolina"},
		{"north carolina", "North Carolina"},
		{"North Carolina", "North Carolina"},
		{"  Texas ", "Texas"},
		{"dc", "District of Columbia"},
		{"district of columbia", "District of Columbia"},
	}
	for _, tc := range cases {
		got, ok := NormalizeState(tc.in)
		if !ok || got != tc.want {
			t.Errorf("NormalizeState(%q) = %q, %v; want %q", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := NormalizeState("atlantis"); ok {
		t.Error("unknown state must not normalize")
	}
}

func TestCodesForState(t *testing.T) {
	codes := CodesForState("wy")
	if len(codes) != 1 || codes[0] != "307" {
		t.Fatalf("Wyoming: %v", codes)
	}
	if len(CodesForState("California")) < 30 {
		t.Error("California should have many area codes")
	}
	if CodesForState("nowhere") != nil {
		t.Error("unknown state must return nil")
	}
}

func TestExtract(t *testing.T) {
	cases := []struct {
		in   string
		code string
		ok   bool
	}{
		{"+19195551234", "919", true},
		{"19195551234", "919", true},
		{"9195551234", "919", true},
		{"(919) 555-1234", "919", true},
		{"+1-919-555-1234", "919", true},
		{"919.555.1234", "919", true},
		{"+442071234567", "", false},
		{"", "", false},
		{"12", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		got, ok := Extract(tc.in)
		if ok != tc.ok || got != tc.code {
			t.Errorf("Extract(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.code, tc.ok)
		}
	}
}

func TestNumberInState(t *testing.T) {
	if !NumberInState("+19195551234", "NC") {
		t.Error("919 is North Carolina")
	}
	if NumberInState("+12125551234", "NC") {
		t.Error("212 is not North Carolina")
	}
	if NumberInState("garbage", "NC") {
		t.Error("unparseable numbers never match")
	}
	if NumberInState("+19195551234", "atlantis") {
		t.Error("unknown states never match")
	}
}
