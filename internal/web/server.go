// Package web serves the upload UI and the JSON analysis endpoint.
package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/session"
	"github.com/parthsali/prompt-generator/internal/util"
)

const maxUploadBytes = 32 << 20

type Server struct {
	engines *analyze.Engines
}

func New(engines *analyze.Engines) *Server {
	return &Server{engines: engines}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", s.Index)
	mux.HandleFunc("/analyze", s.Analyze)
	mux.HandleFunc("/v1/analyze", s.AnalyzeJSON)
	return mux
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	render(w, "index", nil)
}

type resultView struct {
	Name     string
	Label    string
	DataURL  template.URL
	Prompt   string
	Warnings []string
}

type resultsPage struct {
	Results  []resultView
	Warnings []string
}

// Analyze handles the upload form: each image runs through the pipeline in
// upload order, inside a request-scoped session.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "bad upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	eng, err := s.engines.GetEngine(r.FormValue("engine"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req := analyze.NewRequester(eng)

	sess, err := session.New()
	if err != nil {
		http.Error(w, "scratch storage: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page := resultsPage{}
	for _, fh := range r.MultipartForm.File["images"] {
		data, err := readUpload(fh.Open)
		if err != nil {
			page.Warnings = append(page.Warnings, fh.Filename+": "+err.Error())
			continue
		}
		res := sess.Process(r.Context(), req, session.Upload{Name: fh.Filename, Data: data})

		b64 := base64.StdEncoding.EncodeToString(data)
		page.Results = append(page.Results, resultView{
			Name:     res.Name,
			Label:    res.Label,
			DataURL:  template.URL(util.MakeDataURL(util.SniffMimeHTTP(data), b64)),
			Prompt:   res.Prompt,
			Warnings: res.Warnings,
		})
	}
	page.Warnings = append(page.Warnings, sess.Close()...)

	render(w, "results", page)
}

type analyzeRequest struct {
	LLMName  string `json:"llm_name"`
	Name     string `json:"name"`
	ImageB64 string `json:"image_b64"`
}

type analyzeResponse struct {
	Label    string   `json:"label,omitempty"`
	Analysis string   `json:"analysis"`
	Prompt   string   `json:"prompt"`
	Warnings []string `json:"warnings,omitempty"`
}

// AnalyzeJSON is the API flavor of Analyze: one base64 image in, the derived
// label, raw analysis and built prompt out.
func (s *Server) AnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	img, err := base64.StdEncoding.DecodeString(strings.TrimSpace(req.ImageB64))
	if err != nil || len(img) == 0 {
		http.Error(w, "bad image_b64", http.StatusBadRequest)
		return
	}

	eng, err := s.engines.GetEngine(req.LLMName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := session.New()
	if err != nil {
		http.Error(w, "scratch storage: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()

	name := req.Name
	if name == "" {
		name = "upload"
	}
	res := sess.Process(ctx, analyze.NewRequester(eng), session.Upload{Name: name, Data: img})
	warnings := append(res.Warnings, sess.Close()...)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Label:    res.Label,
		Analysis: res.Payload,
		Prompt:   res.Prompt,
		Warnings: warnings,
	})
}

func readUpload(open func() (multipart.File, error)) ([]byte, error) {
	f, err := open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render template", "template", name, "err", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
