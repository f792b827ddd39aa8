package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRecommendationIntent(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"hello, how are you", false},
		{"what a lovely day", false},
		{"recommend a hotel", true},
		{"RECOMMEND something", true},
		{"any good restaurant nearby?", true},
		{"แนะนำที่เที่ยวหน่อย", true},
		{"ไปไหนดีช่วงปีใหม่", true},
		{"โรงแรมแถวหาดป่าตอง", true},
		{"help me plan a trip", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRecommendationIntent(tc.text), "text: %q", tc.text)
	}
}
