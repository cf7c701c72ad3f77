package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/clockface/pkg/buildinfo"
	"github.com/matzehuels/clockface/pkg/errors"
	"github.com/matzehuels/clockface/pkg/observability"
	"github.com/matzehuels/clockface/pkg/pipeline"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second
)

type serveFlags struct {
	faceFlags
	addr   string
	assets string
}

func (c *CLI) serveCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the clock page over HTTP",
		Long: `Serve renders the clock page once and hosts it for previewing.

Routes:
  /            the HTML page
  /clock.svg   the bare clock face
  /healthz     build information as JSON
  /metrics     Prometheus metrics

With --assets, files in that directory are served as well, so the clock
script can be hosted next to the page.`,
		Example: `  clockface serve --assets ./web --script /webSocketClock.js
  clockface serve --config clock.yaml --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, flags)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.addr, "addr", defaultAddr, "listen address")
	fs.StringVar(&flags.assets, "assets", "", "directory of static files to serve")
	flags.faceFlags.bind(fs)

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, flags *serveFlags) error {
	faceOpts, page, err := flags.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	m := newMetrics()
	observability.SetPipelineHooks(m)
	defer observability.Reset()

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Face:   faceOpts,
		Format: pipeline.FormatHTML,
		Page:   page,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	srv := newPreviewServer(result, flags.assets, logger, m)
	if flags.assets == "" {
		printWarning(cmd.ErrOrStderr(), "No --assets directory; the page loads %s from elsewhere", page.Script)
	}
	printSuccess(cmd.ErrOrStderr(), "Serving %s", StyleLink.Render("http://"+flags.addr+"/"))
	return srv.listen(ctx, flags.addr)
}

// previewServer serves pre-rendered clock markup. The documents are
// rendered once and never modified, so handlers share no mutable state.
type previewServer struct {
	page    []byte
	svg     []byte
	pageTag string
	svgTag  string
	assets  string
	logger  *log.Logger
	metrics *metrics
}

func newPreviewServer(result *pipeline.Result, assets string, logger *log.Logger, m *metrics) *previewServer {
	s := &previewServer{
		page:    result.Artifacts[pipeline.FormatHTML],
		svg:     result.Artifacts[pipeline.FormatSVG],
		assets:  assets,
		logger:  logger,
		metrics: m,
	}
	s.pageTag = etag(s.page)
	s.svgTag = etag(s.svg)
	return s
}

func (s *previewServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.serveDocument(s.page, s.pageTag, "text/html; charset=utf-8"))
	r.Get("/clock.svg", s.serveDocument(s.svg, s.svgTag, "image/svg+xml"))
	r.Get("/healthz", s.serveHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	if s.assets != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.assets)))
	}
	return r
}

// instrument counts requests by matched route and logs them at debug level.
func (s *previewServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "took", time.Since(start))
	})
}

func (s *previewServer) serveDocument(body []byte, tag, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", tag)
		w.Header().Set("Server", buildinfo.UserAgent())
		if r.Header.Get("If-None-Match") == tag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)
	}
}

func (s *previewServer) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}{"ok", buildinfo.Get()})
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func (s *previewServer) listen(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

// etag returns a strong entity tag for body.
func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
