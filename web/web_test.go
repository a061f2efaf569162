package web_test

import (
	"testing"

	"github.com/lakefield/tasklist/web"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{"index.html", "app.js", "style.css"} {
		data, err := web.Assets.ReadFile(name)
		require.NoError(t, err)
		require.NotEmpty(t, data, name)
	}
}

// TestClientCoversAllOperations checks the client script wires every API
// operation the server exposes, so a regression in one of the flows (add,
// edit, toggle, delete, auth) shows up here rather than in the browser.
func TestClientCoversAllOperations(t *testing.T) {
	raw, err := web.Assets.ReadFile("app.js")
	require.NoError(t, err)
	js := string(raw)

	for _, call := range []string{
		"'POST', '/auth/register'",
		"'POST', '/auth/login'",
		"'GET', '/todos'",
		"'POST', '/todos'",
		"'PUT', '/todos/' + id",
		"'PATCH', '/todos/' + id + '/toggle'",
		"'DELETE', '/todos/' + id",
	} {
		require.Contains(t, js, call)
	}
}
