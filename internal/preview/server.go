// Package preview serves harvested records over HTTP so they can be
// inspected in a browser: highlighted XML and Turtle, and rendered tree
// and graph images.
package preview

import (
	"context"
	stderrors "errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/oaiview/pkg/display"
	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/oai"
	"github.com/matzehuels/oaiview/pkg/render"
	"github.com/matzehuels/oaiview/pkg/view"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Options configures a Server.
type Options struct {
	Logger   *log.Logger
	Renderer render.Renderer
	Style    string
	RankDir  xmltree.RankDir
	// Limit caps the identifiers listed on /records.
	Limit int
	Set   string
}

// Server is the preview HTTP server for one repository.
type Server struct {
	client *oai.Client
	opts   Options
	router chi.Router
}

// New creates a server backed by client.
func New(client *oai.Client, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = render.Graphviz{}
	}
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	s := &Server{client: client, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.healthz)
	r.Get("/", http.RedirectHandler("/records", http.StatusFound).ServeHTTP)
	r.Get("/records", s.records)
	r.Get("/record", s.record)
	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.opts.Logger.Debug("preview request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

var recordsPage = template.Must(template.New("records").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Endpoint}}</title></head>
<body>
<h1>{{.Endpoint}}</h1>
<table>
<tr><th>Identifier</th><th>Datestamp</th><th>Views</th></tr>
{{range .Headers}}<tr>
<td>{{.Identifier}}{{if .Deleted}} (deleted){{end}}</td>
<td>{{.Datestamp}}</td>
<td>{{$id := .Identifier}}{{range $.Views}}<a href="/record?identifier={{$id}}&amp;view={{.}}">{{.}}</a> {{end}}</td>
</tr>{{end}}
</table>
{{if .Truncated}}<p>Showing the first {{len .Headers}} records.</p>{{end}}
</body></html>
`))

func (s *Server) records(w http.ResponseWriter, r *http.Request) {
	limit := s.opts.Limit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limit {
			limit = n
		}
	}

	it := s.client.ListIdentifiers(oai.ListOptions{Set: s.opts.Set})
	var headers []oai.Header
	truncated := false
	for h, err := range it.All(r.Context()) {
		if err != nil {
			s.fail(w, err)
			return
		}
		if len(headers) == limit {
			truncated = true
			break
		}
		headers = append(headers, h)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := recordsPage.Execute(w, map[string]any{
		"Endpoint":  s.client.Endpoint(),
		"Headers":   headers,
		"Truncated": truncated,
		"Views":     view.Modes,
	})
	if err != nil {
		s.opts.Logger.Error("render records page", "err", err)
	}
}

func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := q.Get("identifier")
	if err := errors.ValidateIdentifier(id); err != nil {
		s.fail(w, err)
		return
	}
	mode, err := view.ParseMode(q.Get("view"))
	if err != nil {
		s.fail(w, err)
		return
	}
	format, err := render.ParseFormat(q.Get("format"))
	if err != nil {
		s.fail(w, err)
		return
	}

	rec, err := s.client.GetRecord(r.Context(), id, "")
	if err != nil {
		s.fail(w, err)
		return
	}

	buf := &display.Buffer{}
	v := &view.Viewer{Display: buf, Renderer: s.opts.Renderer, ImageFormat: format}
	if err := v.Record(r.Context(), rec, mode, s.opts.RankDir); err != nil {
		s.fail(w, err)
		return
	}

	out, ok := buf.Last()
	if !ok {
		http.Error(w, "nothing to display", http.StatusInternalServerError)
		return
	}
	if out.Kind == display.KindImage {
		w.Header().Set("Content-Type", out.Format.MIME())
		_, _ = w.Write(out.Data)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := display.HighlightHTML(w, out.Text, out.Lang, s.opts.Style); err != nil {
		s.opts.Logger.Error("highlight", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= 500 {
		s.opts.Logger.Error("preview", "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

func statusFor(err error) int {
	if oe, ok := oai.AsError(err); ok && oe.Code == oai.CodeIDDoesNotExist {
		return http.StatusNotFound
	}
	return errors.GetCode(err).HTTPStatus()
}
