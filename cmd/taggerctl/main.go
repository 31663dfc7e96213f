// Command taggerctl is the operations CLI: migrations, daily reports,
// sentence imports and account bootstrap. It is meant to be run by hand or
// from cron, e.g.
//
//	taggerctl migrate
//	taggerctl report --date 2024-01-05
//	taggerctl import --dataset <id> --as admin sentences.csv
//	taggerctl user create --username admin --admin
//	taggerctl operator grant --username alice --dataset <id>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
