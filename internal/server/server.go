// Package server exposes lampshade mesh generation over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/config"
	"github.com/soypat/lampshade/render"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

const shutdownTimeout = 5 * time.Second

// Server serves STL files, previews and design tools for lampshade parameters.
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	limits lampshade.Limits
	engine *gin.Engine
}

// New returns a Server using cfg for defaults and log for request logging.
func New(cfg *config.Config, log *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		limits: lampshade.DefaultLimits(),
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

// Handler returns the HTTP handler of the service.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	api := s.engine.Group("/api")
	{
		api.POST("/mesh.stl", s.meshSTL)
		api.POST("/preview.png", s.previewPNG)
		api.GET("/profile.png", s.profilePNG)
		api.GET("/stats", s.stats)
	}
	{
		api.POST("/design/parse", s.parseDesign)
	}
}

// Run serves on the configured address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Server.Listen, Handler: s.engine}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			s.log.Warn("request", fields...)
			return
		}
		s.log.Debug("request", fields...)
	}
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, Response{Success: false, Message: err.Error()})
}

// bindDesign decodes the request into params on top of the configured design.
// JSON bodies are used for POST requests, the query string otherwise.
func (s *Server) bindDesign(c *gin.Context) (lampshade.Params, bool) {
	var req DesignRequest
	var err error
	if c.Request.Method == http.MethodPost {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
		return lampshade.Params{}, false
	}
	p := req.apply(s.cfg.Params)
	if err := s.limits.Validate(p); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return lampshade.Params{}, false
	}
	return p.Derive(), true
}

func (s *Server) build(c *gin.Context, p lampshade.Params) (lampshade.Mesh, bool) {
	m, err := lampshade.BuildConcurrent(c.Request.Context(), p, s.cfg.Build.Workers)
	if err != nil {
		s.fail(c, http.StatusServiceUnavailable, fmt.Errorf("building mesh: %w", err))
		return lampshade.Mesh{}, false
	}
	s.log.Debug("mesh built", zap.String("design", p.DesignString()), zap.Int("triangles", m.NumTriangles()))
	return m, true
}

func (s *Server) meshSTL(c *gin.Context) {
	p, ok := s.bindDesign(c)
	if !ok {
		return
	}
	m, ok := s.build(c, p)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.WriteSTL(&buf, render.Export(m)); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", p.Name()+".stl"))
	c.Data(http.StatusOK, "model/stl", buf.Bytes())
}

func (s *Server) previewPNG(c *gin.Context) {
	p, ok := s.bindDesign(c)
	if !ok {
		return
	}
	m, ok := s.build(c, p)
	if !ok {
		return
	}
	cfg := render.DefaultPreviewConfig()
	cfg.Width, cfg.Height, cfg.Supersample = s.cfg.Preview.Width, s.cfg.Preview.Height, s.cfg.Preview.Supersample
	var buf bytes.Buffer
	if err := render.WritePreviewPNG(&buf, m, cfg); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) profilePNG(c *gin.Context) {
	p, ok := s.bindDesign(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.WriteProfilePlot(&buf, p, 12*vg.Centimeter, 8*vg.Centimeter); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) parseDesign(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	p, err := lampshade.ParseDesign(req.Line, s.cfg.Params)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "ok", Data: p})
}

func (s *Server) stats(c *gin.Context) {
	p, ok := s.bindDesign(c)
	if !ok {
		return
	}
	m, ok := s.build(c, p)
	if !ok {
		return
	}
	e := render.Export(m)
	b := m.Bounds()
	st := Stats{
		Design:            p.DesignString(),
		Name:              p.Name(),
		Vertices:          len(m.Vertices),
		Triangles:         m.NumTriangles(),
		ExportedVertices:  len(e.Vertices),
		ExportedTriangles: e.NumTriangles(),
		Min:               [3]float64{b.Min.X, b.Min.Y, b.Min.Z},
		Max:               [3]float64{b.Max.X, b.Max.Y, b.Max.Z},
		Params:            p,
	}
	for _, r := range m.Regions {
		st.Regions = append(st.Regions, RegionStats{Kind: r.Kind.String(), Vertices: r.NumVertices, Triangles: r.NumTriangles})
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "ok", Data: st})
}
