// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package main

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesseract-graph/tesseract/internal/pkg/test"
	"github.com/tesseract-graph/tesseract/pkg/algorithm"
	"github.com/tesseract-graph/tesseract/pkg/rest"
)

func startServer(t *testing.T, args ...string) *url.URL {
	t.Helper()
	port, err := test.ListenPort()
	require.NoError(t, err)
	addr := net.JoinHostPort("localhost", strconv.Itoa(port))
	cmd := command(t, append([]string{"web", "--http", addr}, args...)...)
	require.NoError(t, cmd.Start())
	// Wait till server is available.
	require.Eventually(t, func() bool {
		_, err = http.Get("http://" + addr)
		return err == nil
	}, 10*time.Second, time.Second/10, "timeout error: %v", err)
	t.Cleanup(func() { _ = cmd.Process.Kill() })
	return &url.URL{Scheme: "http", Host: addr}
}

func request(t *testing.T, method, url, body string) string {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode, string(b))
	return string(b)
}

func TestMain_web(t *testing.T) {
	u := startServer(t, "--pattern", "triangle")
	api := func(path string) string { return u.String() + rest.BasePath + path }

	got := request(t, "POST", api("/edges"), `{"edges":[{"from":1,"to":2},{"from":2,"to":3}]}`)
	assert.Contains(t, got, `"found":0`)
	got = request(t, "POST", api("/edges"), `{"edges":[{"from":1,"to":3}]}`)
	assert.Contains(t, got, `"found":3`)

	assert.JSONEq(t,
		`{"vertices":[1,2,3],"edges":[{"from":1,"to":2},{"from":1,"to":3},{"from":2,"to":3}]}`,
		request(t, "GET", api("/graph"), ""))
	var stats rest.Stats
	require.NoError(t, json.Unmarshal([]byte(request(t, "GET", api("/stats"), "")), &stats))
	assert.Equal(t, algorithm.MiddleOut, stats.Strategy)
	assert.Equal(t, 3, stats.Edges)
	assert.Equal(t, int64(3), stats.Found)
	assert.Positive(t, stats.Filters)

	metrics := request(t, "GET", u.String()+"/metrics", "")
	assert.Contains(t, metrics, "tesseract_engine_edge_updates_total 3")
	assert.Contains(t, metrics, `tesseract_engine_steps_total{code="F",strategy="middleout"}`)
}
