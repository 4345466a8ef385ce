package util

import (
	"flag"
	"strconv"
	"strings"
)

func Flag[T flag.Value](fs *flag.FlagSet, name string, value T, usage string) T {
	fs.Var(value, name, usage)
	return value
}

type floatsFlag []float64

// FormatFloats formats s the same way that a flag defined by
// FloatsFlag parses it.
func FormatFloats(s []float64) string {
	parts := make([]string, 0, len(s))
	for _, v := range s {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (s floatsFlag) String() string {
	return FormatFloats(s)
}

func (s *floatsFlag) Set(v string) error {
	fields := strings.Split(v, ",")
	r := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return err
		}
		r = append(r, n)
	}
	*s = r
	return nil
}

// FloatsFlag defines a flag that holds a comma-separated list of
// floats.
func FloatsFlag(fs *flag.FlagSet, name string, value []float64, usage string) *[]float64 {
	return (*[]float64)(Flag(fs, name, (*floatsFlag)(&value), usage))
}

// Visited returns the names of the flags in fs that were set.
func Visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
