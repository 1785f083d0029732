package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/rgonek/guide-block-parser/assets"
	"github.com/rgonek/guide-block-parser/audit"
)

// documentRequest is the JSON request body. Plain text bodies are accepted
// as the document itself.
type documentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	result := s.parser.Parse(text)
	s.log.Debug("parsed guide",
		"sections", len(result.Sections),
		"warnings", len(result.Warnings),
		"unknown_tags", result.Diagnostics.UnknownTagCount(),
	)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	report := audit.Run(s.parser.Parse(text), audit.Config{MinWords: s.cfg.AuditMinWords})
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	urls := assets.Collect(s.parser.Parse(text).Sections)
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": urls})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	html, err := s.renderer.Document(s.parser.Parse(text).Sections)
	if err != nil {
		s.log.Error("render failed", "error", err)
		jsonError(w, "failed to render guide", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"html": html})
}

func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("request body exceeds max size (%d bytes)", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "failed to read request body", http.StatusBadRequest)
		return "", false
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return string(data), true
	}

	var req documentRequest
	if err := json.Unmarshal(data, &req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	return req.Text, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
