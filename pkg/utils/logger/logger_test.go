package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("Debug(): expected nothing printed, got %q", buf.String())
	}

	l.SetDebug(true)
	l.Debug("shown %d", 2)
	if !strings.Contains(buf.String(), "DEBUG: ") || !strings.HasSuffix(buf.String(), "shown 2\n") {
		t.Fatalf("Debug(): expected a DEBUG line, got %q", buf.String())
	}
}

func TestPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Info("a")
	l.Warn("b")
	l.Error("c")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{"INFO: ", "WARN: ", "ERROR: "}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), buf.String())
	}

	for i, prefix := range expected {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("line %d: expected prefix %q, got %q", i, prefix, lines[i])
		}
	}
}

func TestFormatPairs(t *testing.T) {
	testCases := []struct {
		name          string
		msg           string
		keysAndValues []interface{}
		expected      string
	}{
		{
			name:     "no pairs",
			msg:      "performing request",
			expected: "performing request",
		},
		{
			name:          "pairs",
			msg:           "retrying request",
			keysAndValues: []interface{}{"url", "http://x", "remaining", 2},
			expected:      "retrying request url=http://x remaining=2",
		},
		{
			name:          "odd number of values",
			msg:           "m",
			keysAndValues: []interface{}{"k", "v", "dangling"},
			expected:      "m k=v dangling",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got := formatPairs(test.msg, test.keysAndValues)
			if got != test.expected {
				t.Fatalf("formatPairs(): expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestLeveled(t *testing.T) {
	var buf bytes.Buffer
	l := Leveled{New(&buf)}

	l.Warn("giving up", "attempts", 4)
	if !strings.Contains(buf.String(), "WARN: ") || !strings.HasSuffix(buf.String(), "giving up attempts=4\n") {
		t.Fatalf("Warn(): got %q", buf.String())
	}
}
