package assistant

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "short unchanged", title: "do you sell rice", want: "do you sell rice"},
		{name: "exactly max", title: strings.Repeat("a", maxTitleLen), want: strings.Repeat("a", maxTitleLen)},
		{name: "long ascii cut at max", title: strings.Repeat("a", maxTitleLen+10), want: strings.Repeat("a", maxTitleLen)},
		{
			// the cedi sign is 3 bytes and straddles the cap here; the cut
			// must back up to the rune boundary, not store a broken sequence
			name:  "multibyte rune not split",
			title: strings.Repeat("a", maxTitleLen-2) + "₵ basket",
			want:  strings.Repeat("a", maxTitleLen-2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateTitle(tt.title)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), maxTitleLen)
		})
	}
}
