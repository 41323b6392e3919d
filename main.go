package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"pricingtool/commands"
	"pricingtool/config"
	"pricingtool/handlers"
	"pricingtool/logging"
	"pricingtool/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	app := pocketbase.New()

	var ledgerPath string
	app.RootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", cfg.LedgerPath, "path of the project ledger CSV file")

	// Flags are parsed by the time a command or the serve hook runs.
	ledger := func() *services.Ledger {
		return services.NewLedger(cfg.WithLedgerPath(ledgerPath).LedgerPath)
	}

	commands.Register(app.RootCmd, ledger, cfg.Currency)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		l := ledger()
		logging.Info("serving pricing tool", zap.String("ledger", l.Path()), zap.String("currency", cfg.Currency))
		handlers.RegisterRoutes(se, l, cfg.Currency, "./static")
		return se.Next()
	})

	if err := app.Start(); err != nil {
		logging.Error("pricing tool exited", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
