package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	casos := []struct {
		query    string
		esperado string
	}{
		{"algebra", "%algebra%"},
		{"  algebra  ", "%algebra%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\temp`, `%c:\\temp%`},
		{"", "%%"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, likePattern(c.query), "query %q", c.query)
	}
}
