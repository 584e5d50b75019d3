package main

import (
	"log/slog"

	"walletportal/config"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/service"
	"walletportal/internal/errors"
	logs "walletportal/internal/infra/log"
	"walletportal/internal/infra/thirdweb"

	"github.com/spf13/cobra"
)

var (
	output  string
	verbose bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "walletctl",
		Short:         "Wallet portal from the terminal",
		Long:          "walletctl signs in with an email code, shows the wallet and browses the provider's user directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&output, "output", "text", "output format: text|json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log provider calls to stderr")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newUsersCmd())

	return rootCmd
}

// app holds what every subcommand needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	provider service.WalletProvider
	out      *printer
}

func newApp(cmd *cobra.Command) (*app, error) {
	out, err := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger, err := logs.NewWithWriter(cmd.ErrOrStderr(), config.Log{Pretty: true, Level: level})
	if err != nil {
		return nil, err
	}

	provider := thirdweb.NewClient(
		cfg.Thirdweb.ClientID,
		cfg.Thirdweb.SecretKey,
		thirdweb.WithBaseURL(cfg.Thirdweb.BaseURL),
		thirdweb.WithLogger(logger),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		out:      out,
	}, nil
}

// loadConfig reads the server config file when there is one and the environment otherwise.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		if cfg, err = config.LoadFromEnv(); err != nil {
			return nil, err
		}
	}

	if cfg.Thirdweb.ClientID == "" || cfg.Thirdweb.SecretKey == "" {
		return nil, errors.New("thirdweb credentials missing: set THIRDWEB_CLIENTID and THIRDWEB_SECRETKEY")
	}

	return cfg, nil
}

// describe prefers the user-facing message of an application error.
func describe(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return err.Error()
}
