package start

import (
	"context"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/shopops-cloud/shopops/api"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/export"
	"github.com/shopops-cloud/shopops/internal/metrics"
	"github.com/shopops-cloud/shopops/internal/policy"
	"github.com/shopops-cloud/shopops/internal/secret"
	"github.com/shopops-cloud/shopops/pkg/db"
	"github.com/shopops-cloud/shopops/pkg/env"
	"github.com/shopops-cloud/shopops/pkg/log"
	"github.com/spf13/cobra"
)

const (
	usage   = "start"
	short   = "Start a shopops API instance"
	long    = "This command starts a shopops API instance"
	example = "shopops start"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"launch", "boot", "up", "run", "serve"},
		Example:    example,
		RunE:       start,
	}
)

var cancel context.CancelFunc

func start(cmd *cobra.Command, args []string) error {
	signalChan := make(chan os.Signal, 1)

	go func() {
		for s := range signalChan {
			switch s {
			case syscall.SIGUSR1:
				log.Info("dumping stack traces due to SIGUSR1 signal")
				if profile := pprof.Lookup("goroutine"); profile != nil {
					if err := profile.WriteTo(os.Stdout, 1); err != nil {
						log.Error("write goroutine profile", "error", err)
					}
				}
			case syscall.SIGINT:
				log.Info("gracefully shutting down due to SIGINT signal")
				shutdown()
				os.Exit(0)
			}
		}
	}()

	signal.Notify(signalChan, syscall.SIGUSR1, syscall.SIGINT)

	var errs = make(chan error)
	ctx, cancelFunc := context.WithCancel(context.Background())
	cancel = cancelFunc

	metrics.Register()

	log.Info("migrating database")
	if err := db.Migrate(); err != nil {
		log.Fatal("database migration failure", "error", err)
	}

	vars := env.Variables()

	resolver, err := buildSecretResolver(vars)
	if err != nil {
		log.Fatal("secret resolver configuration failure", "error", err)
	}

	jwtSecret, err := resolver.Resolve(ctx, vars.JWTSecret)
	if err != nil || jwtSecret == "" {
		log.Fatal("jwt secret configuration failure", "error", err)
	}

	manager := auth.NewManager([]byte(jwtSecret), vars.TokenTTL)
	auth.Configure(manager)

	pol, err := buildPolicy(vars)
	if err != nil {
		log.Fatal("policy configuration failure", "error", err)
	}

	syncer, err := buildExports(ctx, vars, resolver)
	if err != nil {
		log.Fatal("export configuration failure", "error", err)
	}

	if syncer != nil {
		log.Info("starting invoice sheet sync", "schedule", vars.SheetsSyncSchedule)
		syncer.Start()
		defer syncer.Stop()
	}

	go func() {
		log.Info("spinning up api")
		errs <- api.Start(manager, pol)
	}()

	defer shutdown()

	return <-errs
}

func buildSecretResolver(vars env.Environment) (*secret.MultiResolver, error) {
	cfg := secret.Config{}

	if vars.VaultAddr != "" {
		cfg.Vault = &secret.VaultConfig{
			Address:   vars.VaultAddr,
			Token:     vars.VaultToken,
			Namespace: vars.VaultNamespace,
		}
	}

	return secret.NewConfiguredResolver(cfg)
}

func buildPolicy(vars env.Environment) (*policy.Policy, error) {
	if vars.PolicyPath == "" {
		return policy.Default(), nil
	}

	log.Info("loading policy", "path", vars.PolicyPath)
	return policy.Load(vars.PolicyPath)
}

// buildExports wires the Google integrations when credentials are
// configured. Returns the invoice sheet syncer when a schedule is
// set, nil otherwise.
func buildExports(ctx context.Context, vars env.Environment, resolver *secret.MultiResolver) (*export.Syncer, error) {
	if vars.GoogleCredentials == "" {
		export.Configure(nil, nil)
		return nil, nil
	}

	credentials, err := resolver.Resolve(ctx, vars.GoogleCredentials)
	if err != nil {
		return nil, err
	}

	var sheets *export.GoogleSheets
	if vars.SheetsSpreadsheet != "" {
		if sheets, err = export.NewGoogleSheets(ctx, []byte(credentials), vars.SheetsSpreadsheet); err != nil {
			return nil, err
		}
	}

	calendar, err := export.NewGoogleCalendar(ctx, []byte(credentials), vars.CalendarID)
	if err != nil {
		return nil, err
	}

	if sheets == nil {
		export.Configure(nil, calendar)
		return nil, nil
	}

	export.Configure(sheets, calendar)

	if vars.SheetsSyncSchedule == "" {
		return nil, nil
	}

	return export.NewSyncer(db.Connection(), sheets, vars.SheetsSyncSchedule)
}

func shutdown() {
	if cancel != nil {
		cancel()
	}
}
