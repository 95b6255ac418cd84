package main

import (
	"context"

	"github.com/retronotes/retronotes/internal/client/cli"
	"github.com/retronotes/retronotes/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
