// Command lerp linearly interpolates between two vectors.
//
//	lerp -start 0,10 -end 1,20 -t 0.5
//
// If -t holds a single value it is used for every element. Otherwise
// it must have one value per element.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"deedles.dev/lerp"
	"deedles.dev/lerp/internal/util"
)

var errNoInput = errors.New("no start or end given")

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("lerp", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "gcfg file with a [lerp] section")
	start := util.FloatsFlag(fs, "start", nil, "comma-separated start vector")
	end := util.FloatsFlag(fs, "end", nil, "comma-separated end vector")
	t := util.FloatsFlag(fs, "t", []float64{0.5}, "interpolation factor, either one or one per element")
	err := fs.Parse(args)
	if err != nil {
		return err
	}

	if *cfgPath != "" {
		cfg, err := readConfig(*cfgPath)
		if err != nil {
			return err
		}
		set := util.Visited(fs)
		if !set["start"] {
			*start = cfg.Lerp.Start
		}
		if !set["end"] {
			*end = cfg.Lerp.End
		}
		if !set["t"] && len(cfg.Lerp.T) != 0 {
			*t = cfg.Lerp.T
		}
	}
	if (len(*start) == 0) || (len(*end) == 0) {
		return errNoInput
	}

	r, err := eval(*start, *end, *t)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, util.FormatFloats(r))
	return err
}

func eval(start, end, t lerp.Vec[float64]) (lerp.Vec[float64], error) {
	if len(t) == 1 {
		return start.LerpScalar(end, t[0])
	}
	return start.Lerp(end, t)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lerp: ")

	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
