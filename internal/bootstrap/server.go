package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/railbooking/api"
	"github.com/Domenick1991/railbooking/config"
	railwayapi "github.com/Domenick1991/railbooking/internal/api/railway_service_api"
	"google.golang.org/grpc"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the REST and gRPC servers and blocks until ctx is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc api.Services) error {
	s := newServers(cfg, svc)

	errCh := make(chan error, 2)

	if cfg.GRPC.Address != "" {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		log.Printf("gRPC server listening on %s", cfg.GRPC.Address)
		go func() { errCh <- s.grpcServer.Serve(lis) }()
	}

	log.Printf("%s listening on %s (%s)", cfg.App.Name, cfg.HTTP.Address, cfg.App.Environment)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.stop()
		return err
	case <-ctx.Done():
		if err := s.shutdown(); err != nil {
			return err
		}
		log.Printf("servers stopped")
		return nil
	}
}

// stop closes both servers without waiting for in-flight requests.
func (s *Servers) stop() {
	s.grpcServer.Stop()
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}

func (s *Servers) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.grpcServer.GracefulStop()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func newServers(cfg *config.Config, svc api.Services) *Servers {
	grpcSrv := grpc.NewServer()
	railwayapi.Register(grpcSrv, railwayapi.NewServer(svc.Trains, svc.Stations, svc.Bookings))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(cfg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}
}
