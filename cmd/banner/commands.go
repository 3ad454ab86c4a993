package main

import (
	"github.com/pasha-bolokhov/banner/banner"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		Width: banner.DefaultWidth,
		Rank:  banner.DefaultRank,
		Pad:   banner.DefaultPad,
	}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "banner").
		WithSynopsis("banner [opts] word [word ...] | banner [opts] -").
		WithDescription("banner draws a fixed-width comment banner around a title.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bannerMain(cfg, cc, args)
		})
}
