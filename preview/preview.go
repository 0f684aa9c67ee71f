// Package preview serves rendered starfield snapshots and animations over HTTP so an
// embedding configuration can be checked without a display
package preview

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/headless"
	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/starfield"
)

const (
	defaultWidth  = 640
	defaultHeight = 360
	defaultFrames = 48
)

type frameQuery struct {
	Width   int      `form:"w"       binding:"omitempty,min=1,max=4096"`
	Height  int      `form:"h"       binding:"omitempty,min=1,max=4096"`
	Frames  int      `form:"frames"  binding:"omitempty,min=0,max=600"`
	Seed    *uint64  `form:"seed"`
	Mode    string   `form:"mode"`
	Variant string   `form:"variant"`
	Density *float64 `form:"density" binding:"omitempty,gt=0,max=10"`
	Twinkle *bool    `form:"twinkle"`
	Glow    *bool    `form:"glow"`
}

type animQuery struct {
	frameQuery
	N     int     `form:"n"     binding:"omitempty,min=1,max=600"`
	Delay int     `form:"delay" binding:"omitempty,min=1,max=100"`
	Scale float64 `form:"scale" binding:"omitempty,gt=0,lte=1"`
}

// Server renders with base settings overridden per request by query parameters
type Server struct {
	base   config.Settings
	logger *log.Logger
}

// New creates a server; a nil logger uses the standard logger
func New(base config.Settings, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{base: base, logger: logger}
}

// Router builds the gin engine with logging and recovery middleware
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/frame.png", s.frame)
	r.GET("/anim.gif", s.anim)
	return r
}

func (s *Server) index(c *gin.Context) {
	query := c.Request.URL.RawQuery
	c.HTML(http.StatusOK, "index", gin.H{
		"Anim":    "/anim.gif?" + query,
		"Frame":   "/frame.png?" + query,
		"Width":   defaultWidth,
		"Height":  defaultHeight,
		"Mode":    s.base.Mode,
		"Variant": s.base.Variant,
	})
}

func (s *Server) frame(c *gin.Context) {
	var q frameQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	cfg, w, h, err := s.resolve(q)
	if err != nil {
		badRequest(c, err)
		return
	}

	var buf bytes.Buffer
	if err := headless.PNG(&buf, cfg, w, h, q.Frames, s.hooks()); err != nil {
		s.logger.Printf("preview: frame: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) anim(c *gin.Context) {
	var q animQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	cfg, w, h, err := s.resolve(q.frameQuery)
	if err != nil {
		badRequest(c, err)
		return
	}

	opts := headless.GIFOptions{
		Warmup: q.Frames,
		Frames: q.N,
		Delay:  q.Delay,
		Scale:  q.Scale,
	}
	if opts.Frames == 0 {
		opts.Frames = defaultFrames
	}
	if opts.Delay == 0 {
		opts.Delay = parameter.GIFFrameDelay
	}

	var buf bytes.Buffer
	if err := headless.GIF(&buf, cfg, w, h, opts, s.hooks()); err != nil {
		s.logger.Printf("preview: anim: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/gif", buf.Bytes())
}

// resolve merges the query over the base settings
func (s *Server) resolve(q frameQuery) (starfield.Config, int, int, error) {
	set := s.base
	if q.Mode != "" {
		set.Mode = q.Mode
	}
	if q.Variant != "" {
		set.Variant = q.Variant
	}
	if q.Seed != nil {
		set.Seed = *q.Seed
	}
	if q.Density != nil {
		set.Density = *q.Density
	}
	if q.Twinkle != nil {
		set.Twinkle = *q.Twinkle
	}
	if q.Glow != nil {
		set.Glow = *q.Glow
	}

	cfg, err := set.Starfield()
	if err != nil {
		return cfg, 0, 0, err
	}
	w, h := q.Width, q.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return cfg, w, h, nil
}

func (s *Server) hooks() starfield.Option {
	return starfield.WithHooks(starfield.LogHooks(s.logger))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>starfield preview</title>
<style>body{margin:0;background:#000;color:#888;font-family:monospace}img{display:block;width:100%}</style>
</head>
<body>
<img src="{{.Anim}}" width="{{.Width}}" height="{{.Height}}" alt="starfield">
<p>mode={{.Mode}} variant={{.Variant}} · <a href="{{.Frame}}">frame.png</a></p>
</body>
</html>
`
