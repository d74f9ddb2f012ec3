package cmd

import (
	"github.com/tracelab/go-raytrace/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("cmd")

// setupLogging applies the global verbosity flags
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
}
