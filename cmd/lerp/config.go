package main

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// config mirrors the file read by -config:
//
//	[lerp]
//	start = 0
//	start = 10
//	end = 1
//	end = 20
//	t = 0.5
type config struct {
	Lerp struct {
		Start []float64
		End   []float64
		T     []float64
	}
}

func readConfig(path string) (cfg config, err error) {
	err = gcfg.ReadFileInto(&cfg, path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	return cfg, nil
}
