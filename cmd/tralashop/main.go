package main

import (
	"os"

	"github.com/zafahi/tralashop/config"
	"github.com/zafahi/tralashop/internal/app"
	"github.com/zafahi/tralashop/pkg/sigctx"
)

func main() {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	shop := app.New(cfg, os.Stdout)
	shop.Start()
	shop.Run(sigCtx, os.Stdin, os.Stdout)
	shop.Close()
}
