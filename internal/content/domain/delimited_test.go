package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  string
		want []string
	}{
		{"comma list with blank entry", "AWS, Docker, , React", CommaDelimiter, []string{"AWS", "Docker", "React"}},
		{"comma list", "React, Node.js, AWS", CommaDelimiter, []string{"React", "Node.js", "AWS"}},
		{"lines with blank line", "Line1\nLine2\n\nLine3", NewlineDelimiter, []string{"Line1", "Line2", "Line3"}},
		{"windows line endings", "Line1\r\nLine2\r\n", NewlineDelimiter, []string{"Line1", "Line2"}},
		{"empty input", "", CommaDelimiter, []string{}},
		{"only separators", " , ,, ", CommaDelimiter, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitDelimited(tt.raw, tt.sep)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitDelimited(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestSplitDelimited_Idempotent(t *testing.T) {
	inputs := []struct {
		raw string
		sep string
	}{
		{"AWS, Docker, , React", CommaDelimiter},
		{"  Go ,Rust,,  ", CommaDelimiter},
		{"a,b,c", CommaDelimiter},
		{"Line1\nLine2\n\nLine3", NewlineDelimiter},
		{"\n\n  padded  \n", NewlineDelimiter},
		{"", NewlineDelimiter},
	}

	for _, in := range inputs {
		first := SplitDelimited(in.raw, in.sep)
		again := SplitDelimited(JoinDelimited(first, in.sep), in.sep)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Errorf("normalize(%q) not idempotent (-first +again):\n%s", in.raw, diff)
		}
	}
}

func TestJoinDelimited(t *testing.T) {
	assert.Equal(t, "React, Node.js", JoinDelimited([]string{"React", "Node.js"}, CommaDelimiter))
	assert.Equal(t, "a\nb", JoinDelimited([]string{"a", "b"}, NewlineDelimiter))
	assert.Equal(t, "", JoinDelimited(nil, CommaDelimiter))
}
