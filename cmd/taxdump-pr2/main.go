// cmd/taxdump-pr2/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taxdump/internal/pr2app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := pr2app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
