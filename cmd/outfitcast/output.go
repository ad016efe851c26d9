// Outfitcast - Weather-Aware Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitcast

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/tomtom215/outfitcast/internal/outfit"
	"github.com/tomtom215/outfitcast/internal/wardrobe"
)

const (
	formatText = "text"
	formatJSON = "json"
)

const noMatchNotice = "No well-matched outfits in this wardrobe. Closest matches:"

func writeResponse(w io.Writer, format string, weather outfit.Weather, resp *outfit.Response) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return writeText(w, weather, resp)
}

func writeText(w io.Writer, weather outfit.Weather, resp *outfit.Response) error {
	fmt.Fprintf(w, "Weather: %.1f°C, rain %.0f%%, wind %.0f km/h\n",
		weather.TemperatureC, weather.RainChance, weather.WindSpeedKmh)
	fmt.Fprintf(w, "Scorer: %s (rule weight %.2f)\n\n", resp.Metadata.Scorer, resp.Metadata.RuleWeight)

	if len(resp.Outfits) == 0 {
		fmt.Fprintln(w, "No outfits could be built from this wardrobe.")
		return writeReasons(w, resp.Reasons)
	}

	if !resp.QualityGatePassed {
		fmt.Fprintln(w, noMatchNotice)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tOUTFIT\tSCORE\tRULE\tCONTENT\tCOLOR")
	for i := range resp.Outfits {
		o := &resp.Outfits[i]
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			i+1, describeOutfit(o), o.Score, o.Breakdown.Rule, o.Breakdown.Content, o.Breakdown.Color)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return writeReasons(w, resp.Reasons)
}

func writeReasons(w io.Writer, reasons []outfit.Reason) error {
	if len(reasons) == 0 {
		return nil
	}
	labels := make([]string, len(reasons))
	for i, r := range reasons {
		labels[i] = string(r)
	}
	_, err := fmt.Fprintf(w, "\nNotes: %s\n", strings.Join(labels, ", "))
	return err
}

func describeOutfit(o *outfit.Outfit) string {
	parts := make([]string, 0, 3)
	if o.Outerwear != nil {
		parts = append(parts, describeItem(o.Outerwear))
	}
	parts = append(parts, describeItem(&o.Top), describeItem(&o.Bottom))
	return strings.Join(parts, " + ")
}

func describeItem(it *wardrobe.Item) string {
	if it.Color == "" {
		return it.Type
	}
	return fmt.Sprintf("%s %s", it.Color, it.Type)
}
