package handlers_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStaticFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestStatic_ServesPages(t *testing.T) {
	dir := t.TempDir()
	writeStaticFixture(t, dir, "news.html", "<html>news page</html>")
	env := newTestEnv(t, dir)

	resp := env.get(t, "/news.html", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "news page")

	resp = env.get(t, "/missing.html", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestStatic_IndexFallsBackToDashboard(t *testing.T) {
	dir := t.TempDir()
	writeStaticFixture(t, dir, "dashboard.html", "<html>dashboard</html>")
	env := newTestEnv(t, dir)

	resp := env.get(t, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "dashboard")

	writeStaticFixture(t, dir, "index.html", "<html>index</html>")
	resp = env.get(t, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "index")
}

func TestStatic_ServesImages(t *testing.T) {
	dir := t.TempDir()
	writeStaticFixture(t, dir, filepath.Join("images", "logo.png"), "png-bytes")
	env := newTestEnv(t, dir)

	resp := env.get(t, "/images/logo.png", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", readBody(t, resp))

	resp = env.get(t, "/images/absent.png", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestStatic_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	writeStaticFixture(t, dir, "dashboard.html", "<html>dashboard</html>")

	// A secret outside the serving root must stay unreachable.
	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o644))

	env := newTestEnv(t, dir)

	paths := []string{
		"/images/..%2Fsecret.txt",
		"/images/..%2F..%2Fetc%2Fpasswd",
		"/images/%2Fetc%2Fpasswd",
		"/..%2Fsecret.html",
	}
	for _, path := range paths {
		resp := env.get(t, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "path %s", path)
		resp.Body.Close()
	}
}

func TestStatic_DirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	writeStaticFixture(t, dir, filepath.Join("images", "inner", "x.png"), "x")
	env := newTestEnv(t, dir)

	resp := env.get(t, "/images/inner", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
