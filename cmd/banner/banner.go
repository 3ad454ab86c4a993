package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pasha-bolokhov/banner/banner"

	"github.com/scott-cotton/cli"
)

func bannerMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Help {
		cfg.Main.Usage(cc, nil)
		return nil
	}
	if cfg.Manual {
		_, err := io.WriteString(cc.Out, manual)
		return err
	}
	ttl, err := title(cc.In, args)
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	return banner.Encode(ttl, cc.Out, opts...)
}

// title forms the banner title from the arguments, or from the first
// line of in when the sole argument is the "-" sentinel.
func title(in io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: no title given", cli.ErrUsage)
	}
	if len(args) == 1 && args[0] == "-" {
		return titleLine(in)
	}
	return strings.Join(args, " "), nil
}

func titleLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("error reading title: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
