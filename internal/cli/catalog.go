package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planwise/roomplan/internal/model"
)

// newCatalogCmd creates the catalog command: print the furniture catalog
// for a bed type, including the size degradation ladder per item.
func newCatalogCmd() *cobra.Command {
	var bedType string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the furniture catalog for a bed type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bed := model.BedType(bedType)
			if _, ok := model.BedSize(bed); !ok {
				return fmt.Errorf("unknown bed type %q (valid: single, double, queen, king)", bedType)
			}

			cat := model.DefaultCatalog(bed)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-22s %-12s %-8s %-10s %s\n", "ITEM", "SIZE (mm)", "CLEAR", "UNIT COST", "VARIANTS")
			for _, kind := range cat.Kinds() {
				spec, _ := cat.Spec(kind)
				size := spec.Footprint()
				variants := ""
				for i, v := range spec.Variants {
					if i > 0 {
						variants += ", "
					}
					variants += fmt.Sprintf("%.0fx%.0f", v.Width, v.Depth)
				}
				if variants == "" {
					variants = "-"
				}
				fmt.Fprintf(out, "%-22s %4.0fx%-6.0f %6.0f %9.2f  %s\n",
					kind, size.Width, size.Depth, spec.Clearance, spec.UnitCost, variants)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bedType, "bed", "b", string(model.BedQueen), "bed type: single, double, queen, king")
	return cmd
}
