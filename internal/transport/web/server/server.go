package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

type Server struct {
	TLSDisabled      bool
	TLSDisabledPort  int
	AutocertHostname string
	Router           http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Handler: s.Router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	var err error
	if s.TLSDisabled {
		srv.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
		err = srv.ListenAndServe()
	} else {
		err = srv.Serve(autocert.NewListener(s.AutocertHostname))
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
