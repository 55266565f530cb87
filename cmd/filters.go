/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/dbwavelets/filters"
	"github.com/notargets/dbwavelets/wavelet"
)

// FiltersCmd represents the filters command
var FiltersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Print the Daubechies filter coefficients",
	Long: `
Prints the scaling filter h (normalized to sum 1) and the wavelet filter g of
an order, optionally with the dilation matrices built from them.

dbwavelets filters --order 3 --matrices`,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, _ := cmd.Flags().GetInt("order")
		matrices, _ := cmd.Flags().GetBool("matrices")
		return PrintFilters(os.Stdout, order, matrices)
	},
}

func init() {
	rootCmd.AddCommand(FiltersCmd)
	FiltersCmd.Flags().IntP("order", "o", 2, fmt.Sprintf("order of the Daubechies basis, 1 to %d", filters.MaxOrder))
	FiltersCmd.Flags().BoolP("matrices", "m", false, "also print the dilation matrices M0 and M1 of h and g")
}

func PrintFilters(w io.Writer, order int, matrices bool) (err error) {
	var h, g []float64
	if h, err = filters.Coefficients(order, true); err != nil {
		return
	}
	if g, err = filters.Coefficients(order, false); err != nil {
		return
	}
	fmt.Fprintf(w, "db%d, support [0,%d]\n", order, filters.Support(order))
	fmt.Fprintf(w, "%4s %23s %23s\n", "k", "h", "g")
	for k := range h {
		fmt.Fprintf(w, "%4d %23.16e %23.16e\n", k, h[k], g[k])
	}
	if !matrices {
		return
	}
	for _, f := range []struct {
		name string
		taps []float64
	}{{"H", h}, {"G", g}} {
		M, err := wavelet.TransferMatrices(f.taps, f.name)
		if err != nil {
			return err
		}
		fmt.Fprint(w, M[0].Print())
		fmt.Fprint(w, M[1].Print())
	}
	return
}
