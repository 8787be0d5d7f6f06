package main

import (
	"context"
	"fmt"
	"os"

	be "venue_tracker/be"
	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/db"
	"venue_tracker/be/biz/db/orm"
	"venue_tracker/be/biz/util/logger"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"
)

var confPath string

func main() {
	root := &cobra.Command{
		Use:           "venue_tracker",
		Short:         "Venue relationship tracker backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&confPath, "config", "c", "conf/deploy.yml", "path of the yaml config file")
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the http server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(confPath)
			if err != nil {
				return err
			}
			logger.Init(conf.Logger)

			clients, err := db.Init(cmd.Context(), conf)
			if err != nil {
				return err
			}

			h, err := be.NewEngine(conf, clients)
			if err != nil {
				_ = clients.Close()
				return err
			}
			h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
				_ = clients.Close()
			})

			hlog.Infof("venue tracker listening on %s (%s)", conf.App.Addr, conf.App.Env)
			// Spin blocks until SIGINT/SIGTERM and then shuts down gracefully
			h.Spin()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(confPath)
			if err != nil {
				return err
			}
			logger.Init(conf.Logger)

			gdb, err := orm.Open(conf.Database, conf.IsDevelopment())
			if err != nil {
				return err
			}
			if err := orm.Migrate(gdb); err != nil {
				return err
			}
			hlog.Infof("migration done for driver %s", conf.Database.Driver)
			return nil
		},
	}
}
