package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pasha-bolokhov/banner/banner"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Width int `cli:"name=w aliases=width desc='banner width in characters'"`
	Rank  int `cli:"name=r aliases=rank desc='blank bordered lines above and below the title'"`
	Pad   int `cli:"name=p aliases=pad desc='fully filled lines at the top and bottom'"`

	Char  string `cli:"name=c aliases=char desc='marker character drawing the box'"`
	Color bool   `cli:"name=color desc='draw the banner in color'"`

	Help   bool `cli:"name=h aliases=help desc='print usage and exit'"`
	Manual bool `cli:"name=manual desc='print the full manual and exit'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]banner.EncodeOption, error) {
	res := []banner.EncodeOption{
		banner.Width(cfg.Width),
		banner.Rank(cfg.Rank),
		banner.Pad(cfg.Pad),
	}
	if cfg.Char != "" {
		if len(cfg.Char) != 1 {
			return nil, fmt.Errorf("%w: -c takes a single character, got %q",
				cli.ErrUsage, cfg.Char)
		}
		res = append(res, banner.Marker(cfg.Char[0]))
	}
	if cfg.Color {
		res = append(res, banner.EncodeColors(banner.NewColors()))
		return res, nil
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res, nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return res, nil
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, banner.EncodeColors(banner.NewColors()))
	}
	return res, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
