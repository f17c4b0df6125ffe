package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/simcheck/internal/compare"
	"github.com/dgallion1/simcheck/internal/parser"
	"github.com/dgallion1/simcheck/internal/pipeline"
)

// Highlight is one match span in the wire format: canonical offsets,
// raw text slices, line numbers and line context on both sides.
type Highlight struct {
	StartA     int     `json:"start_a"`
	EndA       int     `json:"end_a"`
	StartB     int     `json:"start_b"`
	EndB       int     `json:"end_b"`
	TextA      string  `json:"text_a"`
	TextB      string  `json:"text_b"`
	LineA      int     `json:"line_a"`
	LineB      int     `json:"line_b"`
	LineTextA  string  `json:"line_text_a,omitempty"`
	LineTextB  string  `json:"line_text_b,omitempty"`
	Similarity float64 `json:"similarity"`
	MatchType  string  `json:"match_type"`
}

// checkResponse is the synchronous comparison result.
type checkResponse struct {
	OverallScore float64     `json:"overall_score"`
	ExactScore   float64     `json:"exact_score"`
	ShingleScore float64     `json:"shingle_score"`
	SourceFile   string      `json:"source_file"`
	TargetFile   string      `json:"target_file"`
	Highlights   []Highlight `json:"highlights"`
}

// handleCheck compares two uploads synchronously: fileA plus either
// fileB or a text_b form field.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	mode := strings.ToLower(strings.TrimSpace(r.FormValue("mode")))
	if mode != "" && mode != "local" {
		jsonError(w, "mode must be 'local'", http.StatusBadRequest)
		return
	}

	nameA, textA, err := s.readUploadText(r, "fileA")
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	nameB, textB, err := s.readUploadText(r, "fileB")
	if err != nil {
		// Fall back to the text_b form field.
		raw := r.FormValue("text_b")
		if strings.TrimSpace(raw) == "" {
			jsonError(w, "fileB or text_b is required", http.StatusBadRequest)
			return
		}
		nameB, textB = "text_b", raw
	}

	if strings.TrimSpace(textA) == "" || strings.TrimSpace(textB) == "" {
		jsonError(w, "both documents are required for comparison", http.StatusBadRequest)
		return
	}

	result := compare.Compare([]byte(textA), []byte(textB))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkResponse{
		OverallScore: result.CombinedScore,
		ExactScore:   result.ExactScore,
		ShingleScore: result.ShingleScore,
		SourceFile:   nameA,
		TargetFile:   nameB,
		Highlights:   buildHighlights(result, textA, textB),
	})
}

// handleCheckAsync queues the same comparison as a job and returns a
// poll URL.
func (s *Server) handleCheckAsync(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	nameA, dataA, err := s.readUpload(r, "fileA")
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	nameB, dataB, err := s.readUpload(r, "fileB")
	if err != nil {
		raw := r.FormValue("text_b")
		if strings.TrimSpace(raw) == "" {
			jsonError(w, "fileB or text_b is required", http.StatusBadRequest)
			return
		}
		nameB, dataB = "text_b.txt", []byte(raw)
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        pipeline.ContentHashHex([]byte(fmt.Sprintf("%s-%s-%d", nameA, nameB, now.UnixNano())))[:20],
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		FilenameA: nameA,
		FilenameB: nameB,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFiles(dataA, dataB)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/check/%s/status", job.ID),
	})
}

func (s *Server) handleCheckStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()

	resp := map[string]any{
		"job_id": snap.ID,
		"status": snap.Status,
		"phase":  snap.Phase,
		"file_a": snap.FilenameA,
		"file_b": snap.FilenameB,
		"errors": snap.Errors,
	}
	if snap.Result != nil {
		resp["overall_score"] = snap.Result.CombinedScore
		resp["exact_score"] = snap.Result.ExactScore
		resp["shingle_score"] = snap.Result.ShingleScore
		resp["highlights"] = spanHighlights(snap.Result)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// readUpload reads one multipart file field, enforcing the size limit.
func (s *Server) readUpload(r *http.Request, field string) (string, []byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%s is required: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s", field)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, fmt.Errorf("%s exceeds max size (%d bytes)", field, s.cfg.MaxUploadBytes)
	}
	return sanitizeFilename(header.Filename), data, nil
}

// readUploadText reads one multipart file field and extracts its text.
func (s *Server) readUploadText(r *http.Request, field string) (string, string, error) {
	name, data, err := s.readUpload(r, field)
	if err != nil {
		return "", "", err
	}
	text, err := s.extractText(data, name)
	if err != nil {
		return "", "", fmt.Errorf("parse %s: %w", name, err)
	}
	return name, text, nil
}

func (s *Server) extractText(data []byte, filename string) (string, error) {
	p := parser.ForFile(filename)
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}
	return p.Parse(bytes.NewReader(data), filename)
}

// buildHighlights converts match spans to the wire format, adding the
// full text of each span's first line for presentation.
func buildHighlights(result *compare.Result, textA, textB string) []Highlight {
	docA := compare.NewDocument([]byte(textA))
	docB := compare.NewDocument([]byte(textB))

	highlights := spanHighlights(result)
	for i := range highlights {
		highlights[i].LineTextA = docA.LineText(highlights[i].LineA)
		highlights[i].LineTextB = docB.LineText(highlights[i].LineB)
	}
	return highlights
}

func spanHighlights(result *compare.Result) []Highlight {
	matchType := "partial"
	if result.CombinedScore == 100 {
		matchType = "exact"
	}

	highlights := make([]Highlight, 0, len(result.Spans))
	for _, sp := range result.Spans {
		highlights = append(highlights, Highlight{
			StartA:     sp.StartA,
			EndA:       sp.EndA,
			StartB:     sp.StartB,
			EndB:       sp.EndB,
			TextA:      sp.RawTextA,
			TextB:      sp.RawTextB,
			LineA:      sp.LineA,
			LineB:      sp.LineB,
			Similarity: sp.Similarity,
			MatchType:  matchType,
		})
	}
	return highlights
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
