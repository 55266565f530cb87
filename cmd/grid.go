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
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/dbwavelets/InputParameters"
	"github.com/notargets/dbwavelets/grid"
	"github.com/notargets/dbwavelets/utils"
	"github.com/notargets/dbwavelets/wavelet"
)

const (
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

// GridCmd represents the grid command
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Tabulate a Daubechies scaling function or wavelet and its derivative",
	Long: `
Builds the grid of phi (or psi with --wavelet) for the given order over its
support [0, 2*order-1]. The number of bins is the smallest power of two per
unit interval reaching the requested grid size.

dbwavelets grid --order 4 --gridSize 1000 --output db4_phi.grid`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var wp *InputParameters.WaveletParameters
		if wp, err = processInput(cmd); err != nil {
			return
		}
		verbose := viper.GetBool("verbose")
		if verbose {
			wp.Print()
		}
		return RunGrid(wp, verbose, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(GridCmd)
	GridCmd.Flags().IntP("order", "o", 2, "order of the Daubechies basis, 1 to 20 (Haar, order 1, has no normalizable derivative)")
	GridCmd.Flags().IntP("gridSize", "n", 1000, "minimum number of grid bins")
	GridCmd.Flags().BoolP("wavelet", "w", false, "tabulate the wavelet psi instead of the scaling function phi")
	GridCmd.Flags().StringP("output", "O", "", "output file, stdout when empty")
	GridCmd.Flags().StringP("format", "f", FormatText, "output format: text (PLUMED grid) or msgpack")
	GridCmd.Flags().StringP("inputFile", "I", "", "YAML run file with Order, GridSize, Wavelet, Output and Format")
	GridCmd.Flags().BoolP("verbose", "v", false, "print the run parameters and a summary of the grid")
	for _, name := range []string{"order", "gridSize", "wavelet", "output", "format", "verbose"} {
		if err := viper.BindPFlag(name, GridCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// processInput gathers the run parameters from the flags, the config file and
// the environment through viper, then lets a run file fill in anything not
// set explicitly on the command line.
func processInput(cmd *cobra.Command) (wp *InputParameters.WaveletParameters, err error) {
	wp = &InputParameters.WaveletParameters{
		Order:    viper.GetInt("order"),
		GridSize: viper.GetInt("gridSize"),
		Wavelet:  viper.GetBool("wavelet"),
		Output:   viper.GetString("output"),
		Format:   viper.GetString("format"),
	}
	var inputFile string
	if inputFile, err = cmd.Flags().GetString("inputFile"); err != nil || len(inputFile) == 0 {
		return
	}
	var data []byte
	if data, err = os.ReadFile(inputFile); err != nil {
		return
	}
	rf := &InputParameters.WaveletParameters{}
	if err = rf.Parse(data); err != nil {
		return nil, fmt.Errorf("run file %s: %w", inputFile, err)
	}
	mergeRunFile(wp, rf, cmd.Flags().Changed)
	return
}

// mergeRunFile copies the non zero run file fields into wp unless the
// matching flag was changed on the command line.
func mergeRunFile(wp, rf *InputParameters.WaveletParameters, changed func(flag string) bool) {
	wp.Title = rf.Title
	if rf.Order != 0 && !changed("order") {
		wp.Order = rf.Order
	}
	if rf.GridSize != 0 && !changed("gridSize") {
		wp.GridSize = rf.GridSize
	}
	if rf.Wavelet && !changed("wavelet") {
		wp.Wavelet = true
	}
	if len(rf.Output) != 0 && !changed("output") {
		wp.Output = rf.Output
	}
	if len(rf.Format) != 0 && !changed("format") {
		wp.Format = rf.Format
	}
}

// RunGrid builds the grid described by wp and writes it to wp.Output, or to
// stdout when no output file is given.
func RunGrid(wp *InputParameters.WaveletParameters, verbose bool, stdout io.Writer) (err error) {
	if wp.Format != FormatText && wp.Format != FormatMsgpack {
		return fmt.Errorf("unknown output format %q, use %q or %q", wp.Format, FormatText, FormatMsgpack)
	}
	var (
		g      *grid.Grid
		layout wavelet.Layout
	)
	if layout, err = wavelet.NewLayout(wp.Order, wp.GridSize); err != nil {
		return
	}
	if g, err = wavelet.BuildWaveletGrid(wp.Order, wp.GridSize, wp.Wavelet); err != nil {
		return
	}
	w, summary := stdout, stdout
	if len(wp.Output) != 0 {
		var f *os.File
		if f, err = os.Create(wp.Output); err != nil {
			return
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	} else {
		// Keep the summary out of the grid stream
		summary = os.Stderr
	}
	if err = writeGrid(w, g, wp.Format); err != nil {
		return
	}
	if verbose {
		values, derivs := g.Values(), g.Derivatives()
		fmt.Fprintf(summary, "%s: %s\n", g.Name, layout)
		fmt.Fprintf(summary, "value range [%8.5f, %8.5f], derivative range [%8.5f, %8.5f]\n",
			floats.Min(values), floats.Max(values), floats.Min(derivs), floats.Max(derivs))
		if len(wp.Output) != 0 {
			fmt.Fprintf(summary, "wrote %s (%s)\n", wp.Output, wp.Format)
		}
		fmt.Fprintln(summary, utils.MemUsage())
	}
	return
}

func writeGrid(w io.Writer, g *grid.Grid, format string) (err error) {
	switch format {
	case FormatMsgpack:
		var out []byte
		if out, err = g.MarshalBinary(); err != nil {
			return
		}
		_, err = w.Write(out)
	default:
		_, err = g.WriteTo(w)
	}
	return
}
