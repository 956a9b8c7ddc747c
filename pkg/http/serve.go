package xhttp

import (
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/valyala/fasthttp"
)

var DefaultServerOption = ServerOption{
	IdleTimeout:           time.Second * 10,
	MaxIdleWorkerDuration: time.Minute * 1,
	TCPKeepalivePeriod:    time.Minute * 120,
	// receipt and document uploads come through multipart forms
	MaxRequestBodySize:           16 * 1024 * 1024,
	ReadBufferSize:               1024 * 16,
	WriteBufferSize:              1024 * 16,
	ReadTimeout:                  time.Second * 10,
	WriteTimeout:                 time.Second * 10,
	Concurrency:                  30_000,
	MaxConnsPerIP:                10_000,
	DisablePreParseMultipartForm: false,
	NoDefaultServerHeader:        true,
	NoDefaultContentType:         true,
	CloseOnShutdown:              true,
}

type Server = fasthttp.Server

type ServerOption struct {
	IdleTimeout                  time.Duration
	MaxIdleWorkerDuration        time.Duration
	TCPKeepalivePeriod           time.Duration
	MaxRequestBodySize           int
	ReadBufferSize               int
	WriteBufferSize              int
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	Concurrency                  int
	MaxConnsPerIP                int
	DisablePreParseMultipartForm bool
	NoDefaultServerHeader        bool
	NoDefaultContentType         bool
	CloseOnShutdown              bool
}

type Engine struct {
	*Router
	*Server
	middle []MiddlewareFunc
}

func newServer(o ServerOption) *fasthttp.Server {
	return &fasthttp.Server{
		IdleTimeout:                  o.IdleTimeout,
		MaxIdleWorkerDuration:        o.MaxIdleWorkerDuration,
		TCPKeepalivePeriod:           o.TCPKeepalivePeriod,
		MaxRequestBodySize:           o.MaxRequestBodySize,
		ReadBufferSize:               o.ReadBufferSize,
		WriteBufferSize:              o.WriteBufferSize,
		ReadTimeout:                  o.ReadTimeout,
		WriteTimeout:                 o.WriteTimeout,
		Concurrency:                  o.Concurrency,
		MaxConnsPerIP:                o.MaxConnsPerIP,
		DisablePreParseMultipartForm: o.DisablePreParseMultipartForm,
		NoDefaultServerHeader:        o.NoDefaultServerHeader,
		NoDefaultContentType:         o.NoDefaultContentType,
		CloseOnShutdown:              o.CloseOnShutdown,
		Logger:                       logger.GetLogger(),
	}
}

func NewServer(options ServerOption) *Engine {
	return &Engine{
		Server: newServer(options),
		Router: CreateDefaultRouter(),
	}
}

func (e *Engine) ListenAndServe(addr string) error {
	e.doRouting()
	e.Server.Logger.Printf("[xhttp] server is listening on %s", addr)
	return e.Server.ListenAndServe(addr)
}

func (e *Engine) doRouting() {
	for method, route := range e.Router.List() {
		for _, r := range route {
			e.Server.Logger.Printf("[xhttp] method: %s, path: %s", method, r)
		}
	}
	e.Server.Handler = e.Router.Handler
	// middlewares wrap outermost-first, so reverse registration order
	slices.Reverse(e.middle)
	for _, m := range e.middle {
		e.Server.Handler = m(e.Server.Handler)
	}
}

func (e *Engine) CloseOnSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig
		e.Shutdown()
	}()
}

// Use adds middleware to the chain which is run for every request.
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

// Shutdown gracefully shuts down the server without interrupting any
// active connections.
func (e *Engine) Shutdown() {
	e.Server.Logger.Printf("[xhttp] server is shutting down, process id: %d", os.Getpid())
	if err := e.Server.Shutdown(); err != nil {
		e.Server.Logger.Printf("[xhttp] error while shutting down: %v", err)
	}
}
