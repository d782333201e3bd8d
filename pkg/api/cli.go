package api

import (
	"github.com/busmeme/busmeme/pkg/database"
	"github.com/busmeme/busmeme/pkg/redis_client"
	"github.com/busmeme/busmeme/pkg/stopcache"
	"github.com/busmeme/busmeme/pkg/translink"
	"github.com/busmeme/busmeme/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the meme generator web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					env := util.GetEnvironmentVariables()

					var cache translink.Cache
					if env["BUSMEME_REDIS_ADDRESS"] == "" {
						log.Info().Msg("Skipping stop cache setup")
					} else {
						if err := redis_client.Connect(); err != nil {
							return err
						}
						cache = stopcache.Setup()
					}

					planner, err := translink.NewClient(translink.Config{
						Endpoint:  env["BUSMEME_TRANSLINK_ENDPOINT"],
						Username:  env["BUSMEME_TRANSLINK_USERNAME"],
						Password:  env["BUSMEME_TRANSLINK_PASSWORD"],
						APIKey:    env["BUSMEME_TRANSLINK_API_KEY"],
						StopCache: cache,
					})
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), planner)
				},
			},
		},
	}
}
