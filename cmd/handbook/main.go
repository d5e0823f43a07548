package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/customer-handbook/internal/application/usecase"
	"github.com/jhoicas/customer-handbook/internal/infrastructure/storage"
	"github.com/jhoicas/customer-handbook/internal/interfaces/cli"
	"github.com/jhoicas/customer-handbook/pkg/config"
	"github.com/jhoicas/customer-handbook/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(2)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", string(cfg.Backend())).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := storage.Open(ctx, cfg, log.Zerolog())
	if err != nil {
		log.Error().Err(err).Str("backend", string(cfg.Backend())).Msg("abrir almacenamiento")
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
	defer closeRepo()
	log.Debug().Str("backend", string(cfg.Backend())).Msg("almacenamiento abierto")

	customerUC := usecase.NewCustomerUseCase(repo)
	session := cli.NewSession(customerUC, cli.NewReaderInput(os.Stdin), os.Stdout, log.Zerolog())

	// La lectura de stdin bloquea: la sesión corre aparte para poder atender la señal de apagado.
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("sesión finalizada con error")
		}
	case <-ctx.Done():
		log.Warn().Msg("señal de apagado recibida, cerrando...")
	}

	log.Info().Msg("aplicación detenida")
}
