package main

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-deduce/internal/adapters/http"
	"svw.info/sudoku-deduce/internal/hint"
	"svw.info/sudoku-deduce/internal/infrastructure/storage"
	"svw.info/sudoku-deduce/internal/solver"
	"svw.info/sudoku-deduce/internal/usecase"
	"svw.info/sudoku-deduce/internal/validator"
)

func newServeCommand() *cobra.Command {
	var (
		addr    string
		persist string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solving API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromFlags(cmd)
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			// Wire providers -> use cases -> HTTP adapter
			s := solver.NewDeduction(logger)
			uc := usecase.NewService(s, hint.NewSteps(), validator.New(), storage.NewFS(persist))
			h := httpadapter.New(uc, logger)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening", "addr", addr, "persist", persist)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	return cmd
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Hijack lets the websocket upgrade work through the wrapper.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijacking not supported")
	}
	return hj.Hijack()
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}
