package iconchanger

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
)

// ServeRecorder is told about every icon put into a status response.
type ServeRecorder interface {
	RecordServed(ctx context.Context, filename, sha256 string) error
}

// StatusServer answers status queries with a rotating favicon.
type StatusServer struct {
	Changer  *Changer
	Metadata ServerMetadata
	// Recorder is optional.
	Recorder ServeRecorder
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body>{{ .Content }}</body>
</html>
`))

// newIndexRenderer drops raw HTML, since settings and filenames end up in the
// index markdown. Renderers keep state, so each page gets its own.
func newIndexRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
	})
}

type pageContent struct {
	Title   string
	Content template.HTML
}

func (s *StatusServer) GetHTTPHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	var handler http.Handler = mux
	handler = HTTPLogger(handler)
	return handler
}

// Status returns a copy of the base metadata carrying the next icon.
func (s *StatusServer) Status(ctx context.Context) ServerMetadata {
	md := s.Metadata
	icon, ok := s.Changer.Apply(&md)
	if ok && s.Recorder != nil {
		if err := s.Recorder.RecordServed(ctx, icon.Name(), icon.SHA256()); err != nil {
			log.Printf("catalog: while recording %s: %s", icon.Name(), err)
		}
	}
	return md
}

func (s *StatusServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	md := s.Status(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(md); err != nil {
		log.Printf("error: http: while writing status: %s", err)
	}
}

func (s *StatusServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	var markdownBuilder strings.Builder
	fmt.Fprintf(&markdownBuilder, "# %s\n\n", s.Metadata.Description.Text)
	fmt.Fprintf(&markdownBuilder, "- **Version**: %s\n", s.Metadata.Version.Name)
	fmt.Fprintf(&markdownBuilder, "- **Mode**: %s\n", s.Changer.Mode())
	fmt.Fprintf(&markdownBuilder, "- **Icons**: %d\n\n", len(s.Changer.Icons()))
	if len(s.Changer.Icons()) == 0 {
		fmt.Fprintf(&markdownBuilder, "> No icons loaded, status responses carry no favicon.\n")
	}
	for _, icon := range s.Changer.Icons() {
		fmt.Fprintf(&markdownBuilder, "![%s](%s) `%s`\n\n", icon.Name(), icon.DataURI(), icon.Name())
	}
	html := blackfriday.Run([]byte(markdownBuilder.String()), blackfriday.WithRenderer(newIndexRenderer()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := pageTemplate.Execute(w, pageContent{Title: s.Metadata.Description.Text, Content: template.HTML(html)})
	if err != nil {
		log.Printf("error: http: while rendering index: %s", err)
	}
}

func HTTPLogger(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		initialTime := time.Now()
		wr := NewStatusCodeRecorderResponseWriter(w)
		handler.ServeHTTP(wr, r)
		log.Printf("http: time:%dms %d %s %s", time.Since(initialTime)/time.Millisecond, wr.Status, r.Method, r.URL.String())
	})
}

type StatusCodeRecorderResponseWriter struct {
	http.ResponseWriter
	Status int
}

func (r *StatusCodeRecorderResponseWriter) WriteHeader(status int) {
	r.Status = status
	r.ResponseWriter.WriteHeader(status)
}

func NewStatusCodeRecorderResponseWriter(w http.ResponseWriter) *StatusCodeRecorderResponseWriter {
	return &StatusCodeRecorderResponseWriter{ResponseWriter: w, Status: 200}
}
