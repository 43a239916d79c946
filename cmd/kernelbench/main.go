// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// kernelbench is a debugging/demo harness around pkg/kernel, the same
// relationship the teacher's cmd/main psql-wire server has to its
// pkg/plan library. It is explicitly not part of the kernel contract.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"go.uber.org/zap"

	"github.com/groupkit/grouper/pkg/extsort"
	"github.com/groupkit/grouper/pkg/kernel"
	"github.com/groupkit/grouper/pkg/kernelcfg"
	"github.com/groupkit/grouper/pkg/obslog"
)

var (
	cfgFile  string
	minCount int
)

func main() {
	root := &cobra.Command{
		Use:   "kernelbench",
		Short: "Run a group-wise aggregation kernel over a CSV of (label, value...) rows",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a kernelbench.toml config file")
	root.PersistentFlags().IntVar(&minCount, "min-count", -1, "override the configured min_count (-1 = use config default)")

	root.AddCommand(sumCmd(), meanCmd(), varCmd(), quantileCmd(), rankCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRunConfig() kernelcfg.Config {
	cfg, err := kernelcfg.Load(cfgFile)
	if err != nil {
		obslog.Error("loading config", zap.Error(err))
		os.Exit(1)
	}
	if minCount >= 0 {
		cfg.Defaults.MinCount = minCount
	}
	return cfg
}

// readCSV reads column 0 as an integer label and the remaining
// columns as float64 values.
func readCSV(path string) (labels []int, values kernel.Matrix[float64], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, kernel.Matrix[float64]{}, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, kernel.Matrix[float64]{}, err
	}
	if len(rows) == 0 {
		return nil, kernel.Matrix[float64]{}, fmt.Errorf("empty csv")
	}
	k := len(rows[0]) - 1
	mat := kernel.NewMatrix[float64](len(rows), k)
	labels = make([]int, len(rows))
	for i, row := range rows {
		lab, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, kernel.Matrix[float64]{}, fmt.Errorf("row %d label: %w", i, err)
		}
		labels[i] = lab
		for j := 0; j < k; j++ {
			v, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, kernel.Matrix[float64]{}, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			mat.Set(i, j, v)
		}
	}
	return labels, mat, nil
}

func ngroups(labels []int) int {
	max := -1
	for _, l := range labels {
		if l > max {
			max = l
		}
	}
	return max + 1
}

func printResult(title string, out kernel.Matrix[float64], counts []int64) {
	tree := treeprint.NewWithRoot(title)
	for g := 0; g < out.Rows; g++ {
		node := tree.AddMetaBranch(fmt.Sprintf("group %d", g), fmt.Sprintf("count=%d", counts[g]))
		for j := 0; j < out.Cols; j++ {
			node.AddNode(fmt.Sprintf("col[%d] = %v", j, out.At(g, j)))
		}
	}
	fmt.Println(tree.String())
}

// printScanResult renders a per-row result (a cumulative scan or a
// rank assignment), one branch per input row rather than per group.
func printScanResult(title string, labels []int, out kernel.Matrix[float64]) {
	tree := treeprint.NewWithRoot(title)
	for i := 0; i < out.Rows; i++ {
		node := tree.AddBranch(fmt.Sprintf("row %d (group %d)", i, labels[i]))
		for j := 0; j < out.Cols; j++ {
			node.AddNode(fmt.Sprintf("col[%d] = %v", j, out.At(i, j)))
		}
	}
	fmt.Println(tree.String())
}

func parseQuantiles(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	qs := make([]float64, 0, len(parts))
	for _, p := range parts {
		q, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("quantile %q: %w", p, err)
		}
		qs = append(qs, q)
	}
	return qs, nil
}

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "sum <csv-path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadRunConfig()
			labels, values, err := readCSV(args[0])
			if err != nil {
				return err
			}
			g := ngroups(labels)
			out := kernel.NewMatrix[float64](g, values.Cols)
			counts := make([]int64, g)
			in := kernel.ReduceInput[float64]{Values: values, Labels: labels}
			red := kernel.ReduceOutput[float64]{Out: out, Counts: counts}
			if err := kernel.GroupSum(kernel.Float64Ops{}, in, red, cfg.Defaults.MinCount); err != nil {
				return err
			}
			printResult("sum", out, counts)
			return nil
		},
	}
}

func meanCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "mean <csv-path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = loadRunConfig()
			labels, values, err := readCSV(args[0])
			if err != nil {
				return err
			}
			g := ngroups(labels)
			out := kernel.NewMatrix[float64](g, values.Cols)
			counts := make([]int64, g)
			in := kernel.ReduceInput[float64]{Values: values, Labels: labels}
			red := kernel.ReduceOutput[float64]{Out: out, Counts: counts}
			if err := kernel.GroupMean(kernel.Float64Ops{}, in, red); err != nil {
				return err
			}
			printResult("mean", out, counts)
			return nil
		},
	}
}

func varCmd() *cobra.Command {
	var ddof int
	cmd := &cobra.Command{
		Use:  "var <csv-path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadRunConfig()
			if ddof < 0 {
				ddof = cfg.Defaults.Ddof
			}
			labels, values, err := readCSV(args[0])
			if err != nil {
				return err
			}
			g := ngroups(labels)
			out := kernel.NewMatrix[float64](g, values.Cols)
			counts := make([]int64, g)
			in := kernel.ReduceInput[float64]{Values: values, Labels: labels}
			red := kernel.ReduceOutput[float64]{Out: out, Counts: counts}
			if err := kernel.GroupVar(in, red, ddof); err != nil {
				return err
			}
			printResult("var", out, counts)
			return nil
		},
	}
	cmd.Flags().IntVar(&ddof, "ddof", -1, "delta degrees of freedom (-1 = use config default)")
	return cmd
}

// quantileCmd operates on column 0 of the CSV's value columns only,
// the same single-column contract kernel.GroupQuantile itself has.
func quantileCmd() *cobra.Command {
	var qArg string
	cmd := &cobra.Command{
		Use:  "quantile <csv-path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = loadRunConfig()
			labels, values, err := readCSV(args[0])
			if err != nil {
				return err
			}
			qs, err := parseQuantiles(qArg)
			if err != nil {
				return err
			}
			g := ngroups(labels)
			n := values.Rows
			col := make([]float64, n)
			mask := make([]bool, n)
			for i := 0; i < n; i++ {
				col[i] = values.At(i, 0)
			}
			counts := make([]int64, g)
			for _, lab := range labels {
				counts[lab]++
			}
			sortIndexer := extsort.BuildGroupSortIndexer(labels, col, mask)
			colMat := kernel.WrapMatrix(col, n, 1)
			out := kernel.NewMatrix[float64](g, len(qs))
			if err := kernel.GroupQuantile(colMat, sortIndexer, counts, counts, qs, kernel.InterpLinear, out); err != nil {
				return err
			}
			printResult("quantile", out, counts)
			return nil
		},
	}
	cmd.Flags().StringVar(&qArg, "q", "0.5", "comma-separated list of quantile probabilities in [0,1]")
	return cmd
}

func rankCmd() *cobra.Command {
	var ascending, pct bool
	cmd := &cobra.Command{
		Use:  "rank <csv-path>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = loadRunConfig()
			labels, values, err := readCSV(args[0])
			if err != nil {
				return err
			}
			out := kernel.NewMatrix[float64](values.Rows, values.Cols)
			kernel.GroupRank(values, labels, nil, out, ascending, extsort.TiesAverage, extsort.NAKeep, pct)
			printScanResult("rank", labels, out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&ascending, "ascending", true, "rank in ascending order")
	cmd.Flags().BoolVar(&pct, "pct", false, "report ranks as a [0,1] percentage")
	return cmd
}
