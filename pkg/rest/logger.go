// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package rest

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"
)

// logger is a gin handler that logs requests for debugging.
func (a *API) logger(c *gin.Context) {
	if !log.V(2).Enabled() {
		return
	}
	log := log.WithValues("method", c.Request.Method, "url", c.Request.URL, "from", c.Request.RemoteAddr)
	if log.V(4).Enabled() {
		log.V(4).Info("Request received", "body", copyBody(log, c.Request))
	}
	rw := &responseWriter{ResponseWriter: c.Writer}
	c.Writer = rw
	start := time.Now()
	defer func() {
		status := c.Writer.Status()
		log = log.WithValues("code", status, "text", http.StatusText(status), "latency", time.Since(start))
		if len(c.Errors) > 0 {
			log = log.WithValues("errors", c.Errors.Errors())
		}
		if log.V(5).Enabled() {
			log = log.WithValues("response", rw.body.String())
		}
		if c.IsAborted() || status/100 != 2 {
			log.V(2).Info("Request failed")
		} else {
			log.V(3).Info("Request succeeded")
		}
	}()
	c.Next()
}

// copyBody reads the request body and replaces it with an unread copy of what could be read.
func copyBody(log logr.Logger, r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	b, err := io.ReadAll(r.Body)
	if err != nil {
		log.V(4).Info("Request body unreadable", "error", err, "read", len(b))
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	return string(b)
}

// responseWriter keeps a copy of the response body.
type responseWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
