package render

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Regions writes one region per line. When counts is non-nil each line also
// carries the number of records in that region.
func Regions(w io.Writer, regions []string, counts map[string]int) error {
	if len(regions) == 0 {
		_, err := fmt.Fprintln(w, "No regions in dataset.")
		return err
	}

	if counts == nil {
		for _, region := range regions {
			if _, err := fmt.Fprintln(w, region); err != nil {
				return err
			}
		}
		return nil
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "REGION\tCOUNTRIES")
	for _, region := range regions {
		fmt.Fprintf(writer, "%s\t%d\n", region, counts[region])
	}
	return writer.Flush()
}
