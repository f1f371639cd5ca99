package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// field is one line of text output.
type field struct {
	key   string
	value any
}

// emit writes v as YAML, or fields as aligned key/value lines when the
// output format is text.
func (a *app) emit(cmd *cobra.Command, v any, fields []field) error {
	out := cmd.OutOrStdout()

	if a.cfg.Output == "text" {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, f := range fields {
			fmt.Fprintf(tw, "%s\t%s\n", f.key, formatValue(f.value))
		}
		return tw.Flush()
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', 6, 64)
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = strconv.FormatFloat(f, 'g', 6, 64)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// parseFloats parses a comma-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	var values []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
