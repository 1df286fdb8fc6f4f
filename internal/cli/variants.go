package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evdnx/movingavg/indicator"
)

var variantDescriptions = map[indicator.Variant]string{
	indicator.SMA:    "simple moving average over a trailing window",
	indicator.BSMA:   "balanced simple moving average, centered with extrapolated edges",
	indicator.WMA:    "weighted moving average, newest point weighted most",
	indicator.BWMA:   "balanced weighted moving average, forward and reverse passes averaged",
	indicator.EMA:    "exponential moving average",
	indicator.BEMA:   "balanced exponential moving average, forward and backward recursions averaged",
	indicator.Slope:  "one linear trend over the whole sequence",
	indicator.BSlope: "edge trends used by the balanced variants, gaps in between",
}

func newVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the known variant selectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range indicator.Variants() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", v, variantDescriptions[v]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
