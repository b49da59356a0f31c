package main

import (
	"context"

	"github.com/faizmokh/baki/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
