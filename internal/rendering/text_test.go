package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleText(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><title>Hidden</title><style>.a{}</style></head>
<body>
  <h1>  Jane   Doe </h1>
  <script>var x = "nope";</script>
  <p>React</p><p>React</p>
  <input placeholder="Your Name">
</body></html>`

	texts, err := VisibleText(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jane Doe", "React"}, texts)
}

func TestVisibleText_Fragment(t *testing.T) {
	texts, err := VisibleText(`<div><span>✉️</span><a href="mailto:a@b.c">a@b.c</a></div>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@b.c", "✉️"}, texts)
}

func TestDiff(t *testing.T) {
	onlyA, onlyB := Diff([]string{"a", "b", "c"}, []string{"b", "c", "d"})
	assert.Equal(t, []string{"a"}, onlyA)
	assert.Equal(t, []string{"d"}, onlyB)

	onlyA, onlyB = Diff([]string{"x"}, []string{"x"})
	assert.Empty(t, onlyA)
	assert.Empty(t, onlyB)
}
