// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command adagctl calls the estimate platform API gateway from the
// command line.
//
//	adagctl --env staging --token "$TOKEN" estimate create
//	adagctl vehicle get 61449
//	adagctl session logout
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Environ, nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "adagctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
