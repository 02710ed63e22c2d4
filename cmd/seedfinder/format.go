package main

import (
	"encoding/json"
	"fmt"
	"io"
)

func formatCSV(w io.Writer, seeds []uint64) error {
	if _, err := fmt.Fprintln(w, "Seed"); err != nil {
		return err
	}
	for _, seed := range seeds {
		if _, err := fmt.Fprint(w, seed, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatJSON(w io.Writer, seeds []uint64) error {
	if seeds == nil {
		seeds = []uint64{}
	}
	return json.NewEncoder(w).Encode(seeds)
}

// formatHuman prints each seed in decimal and hex, then sign-extended from
// bit 47.
func formatHuman(w io.Writer, seeds []uint64) error {
	for _, seed := range seeds {
		signed := int64(seed<<16) >> 16
		if _, err := fmt.Fprintf(w, "%16d %#014x %16d\n", seed, seed, signed); err != nil {
			return err
		}
	}
	return nil
}

func formatter(name string) (func(io.Writer, []uint64) error, error) {
	switch name {
	case "csv":
		return formatCSV, nil
	case "json":
		return formatJSON, nil
	case "human":
		return formatHuman, nil
	}
	return nil, fmt.Errorf("format must be one of: csv, json, human")
}
