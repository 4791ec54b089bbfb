package htmldoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiroshiyui/baudrate-sub005/pkg/htmldoc"
)

func render(t *testing.T, input string) string {
	t.Helper()
	root, err := htmldoc.Parse(input, htmldoc.DefaultLimits())
	require.NoError(t, err)
	return htmldoc.Render(root)
}

func renderText(t *testing.T, input string) string {
	t.Helper()
	root, err := htmldoc.Parse(input, htmldoc.DefaultLimits())
	require.NoError(t, err)
	return htmldoc.RenderText(root)
}

func TestRenderEscaping(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "text content is escaped",
			input:    "a < b & c > d",
			expected: "a &lt; b &amp; c &gt; d",
		},
		{
			name:     "attribute values are quoted and escaped",
			input:    `<a href="x?a=1&b=2" title='it"s'>y</a>`,
			expected: `<a href="x?a=1&amp;b=2" title="it&#34;s">y</a>`,
		},
		{
			name:     "comments never reach output",
			input:    "a<!-- <script>alert(1)</script> -->b",
			expected: "ab",
		},
		{
			name:     "void elements have no closing tag",
			input:    "a<br>b<hr>c",
			expected: "a<br>b<hr>c",
		},
		{
			name:     "bare attribute gets a quoted empty value",
			input:    "<details open>x</details>",
			expected: `<details open="">x</details>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(t, tt.input))
		})
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline markup is flattened without separators",
			input:    "<b>bold</b> &amp; unsafe",
			expected: "bold & unsafe",
		},
		{
			name:     "block boundaries separate text runs",
			input:    "<p>Hello</p><p>world</p>",
			expected: "Hello world",
		},
		{
			name:     "list items do not run together",
			input:    "<ul><li>one</li><li>two</li></ul>",
			expected: "one two",
		},
		{
			name:     "line break separates runs",
			input:    "a<br>b",
			expected: "a b",
		},
		{
			name:     "no duplicate space when whitespace already present",
			input:    "<p>a </p><p>b</p>",
			expected: "a b",
		},
		{
			name:     "no leading or trailing separator",
			input:    "<p>only</p>",
			expected: "only",
		},
		{
			name:     "entities are decoded not re-escaped",
			input:    "fish &amp; chips",
			expected: "fish & chips",
		},
		{
			name:     "comments contribute nothing",
			input:    "a<!-- x -->b",
			expected: "ab",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderText(t, tt.input))
		})
	}
}

func TestNodeAttrHelpers(t *testing.T) {
	n := &htmldoc.Node{Type: htmldoc.ElementNode, Data: "a"}

	_, ok := n.LookupAttr("href")
	assert.False(t, ok)

	n.SetAttr("href", "http://example.com")
	val, ok := n.LookupAttr("href")
	require.True(t, ok)
	assert.Equal(t, "http://example.com", val)

	n.SetAttr("href", "http://example.org")
	val, _ = n.LookupAttr("href")
	assert.Equal(t, "http://example.org", val)
	assert.Len(t, n.Attr, 1)
}

func TestVoidAndBlockTables(t *testing.T) {
	assert.True(t, htmldoc.IsVoid("br"))
	assert.True(t, htmldoc.IsVoid("img"))
	assert.False(t, htmldoc.IsVoid("p"))

	assert.True(t, htmldoc.IsBlock("p"))
	assert.True(t, htmldoc.IsBlock("li"))
	assert.False(t, htmldoc.IsBlock("em"))
}
