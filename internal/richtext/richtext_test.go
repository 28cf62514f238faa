package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "just a note",
			want: "just a note",
		},
		{
			name: "allowed formatting kept",
			in:   "<b>bold</b> and <em>emphasis</em>",
			want: "<b>bold</b> and <em>emphasis</em>",
		},
		{
			name: "script unwrapped to its text",
			in:   "<b>hi</b><script>alert(1)</script>",
			want: "<b>hi</b>alert(1)",
		},
		{
			name: "unknown element unwrapped keeping children",
			in:   "<article><p>kept</p></article>",
			want: "<p>kept</p>",
		},
		{
			name: "style attribute kept others stripped",
			in:   `<p style="color:red" onclick="evil()" class="x">hi</p>`,
			want: `<p style="color:red">hi</p>`,
		},
		{
			name: "br self closes",
			in:   "a<br>b",
			want: "a<br/>b",
		},
		{
			name: "list structure kept",
			in:   "<ul><li>one</li><li>two</li></ul>",
			want: "<ul><li>one</li><li>two</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "hello world", Text("<p>hello <b>world</b></p>"))
	assert.Equal(t, "plain", Text("plain"))
	assert.Equal(t, "", Text(""))
}
