package commands

import "testing"

func TestParseKeyValue(t *testing.T) {
	cases := []struct {
		in        string
		key, val  string
		expectErr bool
	}{
		{in: "region=eu-west", key: "region", val: "eu-west"},
		{in: "formula=a=b", key: "formula", val: "a=b"},
		{in: "empty=", key: "empty", val: ""},
		{in: "novalue", expectErr: true},
		{in: "=value", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, c := range cases {
		key, val, err := parseKeyValue(c.in)
		if c.expectErr {
			if err == nil {
				t.Errorf("parseKeyValue(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseKeyValue(%q): %v", c.in, err)
			continue
		}
		if key != c.key || val != c.val {
			t.Errorf("parseKeyValue(%q) = %q, %q; want %q, %q", c.in, key, val, c.key, c.val)
		}
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Errorf("parseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"abc", "-1", "1.5", ""} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("parseID(%q): expected error", bad)
		}
	}
}
