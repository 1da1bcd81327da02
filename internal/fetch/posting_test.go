package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRender(t *testing.T, html string, err error) *int {
	t.Helper()
	calls := 0
	orig := renderFunc
	renderFunc = func(_ context.Context, _ string, _ time.Duration, _ bool) (string, error) {
		calls++
		return html, err
	}
	t.Cleanup(func() { renderFunc = orig })
	return &calls
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestJobPosting_StaticContent(t *testing.T) {
	server := serveHTML(t, `<html><body>
		<div class="job-description">
			<p>Own the roadmap</p>
			<p>Write SQL</p>
		</div>
		<form class="application-form">Upload resume</form>
	</body></html>`)
	calls := stubRender(t, "", nil)

	posting, err := JobPosting(context.Background(), server.URL, &PostingOptions{UseBrowser: false})
	require.NoError(t, err)
	assert.Equal(t, BoardGeneric, posting.Board)
	assert.Equal(t, "Own the roadmap\nWrite SQL", posting.Text)
	assert.False(t, posting.Rendered)
	assert.Equal(t, 0, *calls)
}

func TestJobPosting_BrowserFallback(t *testing.T) {
	server := serveHTML(t, `<html><body><div id="root"></div></body></html>`)
	long := strings.Repeat("Agile roadmap ownership. ", 40)
	calls := stubRender(t, `<html><body><main>`+long+`</main></body></html>`, nil)

	posting, err := JobPosting(context.Background(), server.URL, &PostingOptions{UseBrowser: true})
	require.NoError(t, err)
	assert.True(t, posting.Rendered)
	assert.Contains(t, posting.Text, "Agile roadmap ownership.")
	assert.Equal(t, 1, *calls)
}

func TestJobPosting_BrowserFailureKeepsHTTPText(t *testing.T) {
	server := serveHTML(t, `<html><body><main>Short text</main></body></html>`)
	calls := stubRender(t, "", errors.New("chrome not found"))

	posting, err := JobPosting(context.Background(), server.URL, &PostingOptions{UseBrowser: true})
	require.NoError(t, err)
	assert.Equal(t, "Short text", posting.Text)
	assert.False(t, posting.Rendered)
	assert.Equal(t, 1, *calls)
}

func TestJobPosting_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL, nil)
	require.Error(t, err)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   short   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}
