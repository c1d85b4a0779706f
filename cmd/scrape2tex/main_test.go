package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ourgreenway/scrape2tex"
	main "github.com/ourgreenway/scrape2tex/cmd/scrape2tex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const briefPage = `<html><body><main>
<h1>green roofs</h1>
<h3>WRITTEN BY: jo park</h3>
<h3>Edited by: sam lee</h3>
<h2>why it matters</h2>
<p>Roofs absorb 50% of rainfall.</p>
<img src="/media/roof.png">
<p>References:</p>
<p>Study <a href="https://example.org/study">link</a></p>
</main></body></html>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/brief", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(briefPage))
	})
	mux.HandleFunc("/media/roof.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newMain() *main.Main {
	m := main.NewMain()
	m.Now = func() time.Time { return time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC) }
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "scrape2tex")
	assert.Contains(t, stdout.String(), "--out")
	assert.Contains(t, stdout.String(), "--render")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	assert.Contains(t, stdout.String(), "scrape2tex")
}

func TestMain_Run_Convert(t *testing.T) {
	t.Parallel()

	t.Run("writes document and images", func(t *testing.T) {
		t.Parallel()

		server := newSite(t)
		dir := t.TempDir()
		out := filepath.Join(dir, "brief.tex")
		images := filepath.Join(dir, "img")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			server.URL + "/brief", "--out", out, "--images", images,
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote "+out+" (1 images, 0 skipped)")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		tex := string(data)
		assert.Contains(t, tex, `\documentclass[letter]{ourGreenwayBrand}`)
		assert.Contains(t, tex, `\headerlabel{Research Brief}`)
		assert.Contains(t, tex, `\titletext{Green Roofs}`)
		assert.Contains(t, tex, `\authortext{Jo Park}`)
		assert.Contains(t, tex, `\editedtext{Sam Lee}`)
		assert.Contains(t, tex, `\datetext{March 05, 2026}`)
		assert.Contains(t, tex, `\section{Why it matters}`)
		assert.Contains(t, tex, `Roofs absorb 50\% of rainfall.`)
		assert.Contains(t, tex, `\includegraphics[width=0.7\textwidth]{`+filepath.ToSlash(filepath.Join(images, "roof.png"))+`}`)
		assert.Contains(t, tex, `\hspace{1em}Study link \url{https://example.org/study}`)
		assert.FileExists(t, filepath.Join(images, "roof.png"))
	})

	t.Run("keeps remote images without download", func(t *testing.T) {
		t.Parallel()

		server := newSite(t)
		dir := t.TempDir()
		out := filepath.Join(dir, "brief.tex")
		images := filepath.Join(dir, "img")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			server.URL + "/brief", "--out", out, "--images", images, "--no-download",
		}, &stdout, &stderr)

		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `\includegraphics[width=0.7\textwidth]{`+server.URL+`/media/roof.png}`)
		assert.NoDirExists(t, images)
	})

	t.Run("uses config file under flags", func(t *testing.T) {
		t.Parallel()

		server := newSite(t)
		dir := t.TempDir()
		out := filepath.Join(dir, "flag.tex")
		cfgPath := filepath.Join(dir, "scrape2tex.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(
			"header: Policy Brief\n"+
				"out: "+filepath.Join(dir, "config.tex")+"\n"+
				"documentClass: otherBrand\n"+
				"timeout: 5s\n",
		), 0644))
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			server.URL + "/brief", "--config", cfgPath, "--out", out, "--no-download", "--date", "Spring 2026",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "config.tex"))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		tex := string(data)
		assert.Contains(t, tex, `\documentclass[letter]{otherBrand}`)
		assert.Contains(t, tex, `\headerlabel{Policy Brief}`)
		assert.Contains(t, tex, `\datetext{Spring 2026}`)
	})

	t.Run("logs requests when verbose", func(t *testing.T) {
		t.Parallel()

		server := newSite(t)
		out := filepath.Join(t.TempDir(), "brief.tex")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			server.URL + "/brief", "--out", out, "--no-download", "--verbose",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "msg=fetch")
		assert.Contains(t, stderr.String(), "msg=extract")
		assert.Contains(t, stderr.String(), "msg=\"wrote output\"")
	})
}

func TestMain_Run_Errors(t *testing.T) {
	t.Parallel()

	t.Run("fails on page fetch error without writing", func(t *testing.T) {
		t.Parallel()

		server := newSite(t)
		out := filepath.Join(t.TempDir(), "brief.tex")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			server.URL + "/missing", "--out", out,
		}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, scrape2tex.EFETCH, scrape2tex.ErrorCode(err))
		assert.NoFileExists(t, out)
	})

	t.Run("fails on page without main content", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body><p>nothing</p></body></html>"))
		}))
		t.Cleanup(server.Close)
		out := filepath.Join(t.TempDir(), "brief.tex")
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{server.URL, "--out", out}, &stdout, &stderr)

		assert.Equal(t, scrape2tex.ESTRUCTURE, scrape2tex.ErrorCode(err))
		assert.NoFileExists(t, out)
	})

	t.Run("rejects unknown config keys", func(t *testing.T) {
		t.Parallel()

		cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("colour: green\n"), 0644))
		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			"https://example.com", "--config", cfgPath,
		}, &stdout, &stderr)

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})

	t.Run("rejects negative timeout", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{
			"https://example.com", "--timeout=-1s",
		}, &stdout, &stderr)

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain().Run(context.Background(), []string{"https://example.com", "--pdf"}, &stdout, &stderr)

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})
}
