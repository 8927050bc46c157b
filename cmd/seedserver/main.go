package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/gophtodo/internal/seedserver"
	"github.com/dmitrijs2005/gophtodo/internal/seedserver/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := seedserver.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
