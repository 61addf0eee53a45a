package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/radieske/cricket-predictor/internal/shared/config"
	"github.com/radieske/cricket-predictor/internal/shared/db"
	"github.com/radieske/cricket-predictor/internal/shared/logger"
)

func main() {
	steps := flag.Int("steps", 1, "número de migrações a desfazer em down")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [-steps N] up|down|status\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "migrate"
	}
	log := logger.Must(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	switch cmd {
	case "up":
		err = db.MigrateUp(pg)
	case "down":
		err = db.MigrateDown(pg, *steps)
	case "status":
		var st db.MigrationStatus
		st, err = db.Status(pg)
		if err == nil {
			log.Info("migration status", zap.Uint("version", st.Version), zap.Bool("dirty", st.Dirty), zap.Bool("applied", st.Applied))
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("migrate failed", zap.String("cmd", cmd), zap.Error(err))
	}
	log.Info("migrate done", zap.String("cmd", cmd))
}
