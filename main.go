// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"log"

	"candlekit/chartui"
	"candlekit/config"

	"gioui.org/app"
)

func main() {
	c := config.NewGlobalConfig()
	a := chartui.NewChartApp(c)
	if err := a.Initialize(); err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	go a.Run(context.Background())
	app.Main()
}
