package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goamb/adapters/battery"
	"goamb/adapters/excel"
	"goamb/adapters/rng"
	"goamb/app"
	"goamb/domain/ambtest"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goamb-cli",
		Short: "Trapezoidal fuzzy arithmetic and ambiguity permutation testing",
	}

	rootCmd.AddCommand(
		newAmbiguityCmd(),
		newTestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAmbiguityCmd() *cobra.Command {
	var sheetX, sheetY string

	cmd := &cobra.Command{
		Use:   "ambiguity [sample-file]",
		Short: "Print per-observation ambiguities and group summaries",
		Long: `Load two fuzzy samples from an .xlsx workbook (one sheet per group,
columns a, b, c, d) or a CSV file (columns a, b, c, d, group) and print
each observation's ambiguity together with group summaries.

Example: goamb-cli ambiguity exam_scores.xlsx --sheet-x X --sheet-y Y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := excel.NewSampleReader(args[0], sheetX, sheetY)
			x, y, err := reader.LoadSamples(cmd.Context())
			if err != nil {
				return err
			}

			for _, group := range []struct {
				label  string
				sample interface{ Ambiguities() []float64 }
			}{{"X", x}, {"Y", y}} {
				fmt.Printf("Sample %s:\n", group.label)
				for i, amb := range group.sample.Ambiguities() {
					fmt.Printf("  [%2d] %.6f\n", i+1, amb)
				}
			}

			summaryX, err := x.Summarize()
			if err != nil {
				return err
			}
			summaryY, err := y.Summarize()
			if err != nil {
				return err
			}
			fmt.Printf("Summary X: n=%d mean=%.4f sd=%.4f min=%.4f max=%.4f\n",
				summaryX.Size, summaryX.Mean, summaryX.StdDev, summaryX.Min, summaryX.Max)
			fmt.Printf("Summary Y: n=%d mean=%.4f sd=%.4f min=%.4f max=%.4f\n",
				summaryY.Size, summaryY.Mean, summaryY.StdDev, summaryY.Min, summaryY.Max)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetX, "sheet-x", "X", "Workbook sheet holding sample X")
	cmd.Flags().StringVar(&sheetY, "sheet-y", "Y", "Workbook sheet holding sample Y")

	return cmd
}

func newTestCmd() *cobra.Command {
	var (
		alpha        float64
		permutations int
		seed         int64
		mode         string
		sheetX       string
		sheetY       string
		paired       bool
	)

	cmd := &cobra.Command{
		Use:   "test [sample-file]",
		Short: "Run the two-sample ambiguity permutation test",
		Long: `Run the permutation test for equal ambiguity on two fuzzy samples
loaded from an .xlsx workbook or a CSV file.

Example: goamb-cli test exam_scores.xlsx --alpha 0.05 --permutations 10000 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := ambtest.Params{
				Alpha:        alpha,
				Permutations: permutations,
				Seed:         seed,
				Mode:         ambtest.Mode(mode),
				ExactCeiling: ambtest.DefaultExactCeiling,
			}

			service := app.NewAmbiguityService(
				battery.NewAmbiguityReferee(rng.NewAdapter()),
				nil,
			)
			reader := excel.NewSampleReader(args[0], sheetX, sheetY)

			result, err := service.RunTestFromSource(cmd.Context(), reader, params, paired)
			if err != nil {
				return err
			}

			output, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(output))
			return nil
		},
	}

	cmd.Flags().Float64Var(&alpha, "alpha", ambtest.DefaultAlpha, "Significance level in (0, 1)")
	cmd.Flags().IntVar(&permutations, "permutations", ambtest.DefaultPermutations, "Monte Carlo resample budget")
	cmd.Flags().Int64Var(&seed, "seed", ambtest.DefaultSeed, "Random seed for reproducible results")
	cmd.Flags().StringVar(&mode, "mode", string(ambtest.ModeAuto), "Resampling mode: auto, exact, or monte_carlo")
	cmd.Flags().BoolVar(&paired, "paired", false, "Treat the samples as matched pairs and run the sign-flip test")
	cmd.Flags().StringVar(&sheetX, "sheet-x", "X", "Workbook sheet holding sample X")
	cmd.Flags().StringVar(&sheetY, "sheet-y", "Y", "Workbook sheet holding sample Y")

	return cmd
}
