package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>We need Go engineers</p>"))
	assert.True(t, LooksLikeHTML("Requirements:<br/>Go"))
	assert.False(t, LooksLikeHTML("Requirements: 3+ years of Go, C++ <-> Rust"))
}

func TestExtractMainText_PrefersJobDescription(t *testing.T) {
	html := `<html><body>
<header>Acme Careers</header>
<div class="sidebar">Similar jobs</div>
<div class="job-description">
  <h1>Senior Engineer</h1>
  <p>Build services in <strong>Go</strong>.</p>
  <ul><li>Kubernetes</li><li>AWS</li></ul>
</div>
<footer>Privacy</footer>
<script>var x = 1;</script>
</body></html>`

	text, err := ExtractMainText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Build services in Go.")
	assert.Contains(t, text, "- Kubernetes")
	assert.Contains(t, text, "- AWS")
	assert.NotContains(t, text, "Acme Careers")
	assert.NotContains(t, text, "Similar jobs")
	assert.NotContains(t, text, "var x")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><p>Python developer</p><p>Remote</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Python developer\nRemote", text)
}

func TestNormalizeJobDescription_PlainText(t *testing.T) {
	raw := "We are hiring.\r\n\r\n\r\n\r\nRequirements:   Go, SQL"

	assert.Equal(t, "We are hiring.\n\nRequirements: Go, SQL", NormalizeJobDescription(raw))
}
