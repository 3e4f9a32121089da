package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fhevm-examples/internal/app"
	"fhevm-examples/internal/domain"
	"fhevm-examples/internal/logging"
	"fhevm-examples/internal/version"
)

var (
	rootDir    string
	configFile string
	verbose    bool

	logger *zap.Logger
	wire   *app.Wire
)

// Execute runs the create-fhevm-category CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "create-fhevm-category <category> [output-dir]",
		Short: "Generate a Hardhat project bundling a whole example category",
		Long: `create-fhevm-category copies every contract of one category, together with
tests, fixtures and helpers, into a ready-to-run Hardhat project. Sources
keep their repository layout so shared fixtures resolve unchanged.

Missing member files are skipped with a warning instead of failing the run.
The output directory defaults to the category id and must not exist yet.`,
		Version: version.Version,
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(verbose)

			// list works from the compiled-in registry alone and must not
			// require a repository checkout.
			if cmd.Name() == "list" {
				return nil
			}

			w, err := app.NewWire(app.Config{Root: rootDir, ConfigFile: configFile, Logger: logger})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir := ""
			if len(args) == 2 {
				outputDir = args[1]
			}
			report, err := wire.Scaffolder.CreateCategory(args[0], outputDir)
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", "", "examples repository root (default: discovered from the working directory)")
	root.PersistentFlags().StringVar(&configFile, "config", "", "settings file (default ./.fhevm-scaffold.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(listCmd())
	return root.Execute()
}

func printReport(r *domain.Report) {
	fmt.Printf("Scaffolded %s %q into %s\n", r.Kind, r.ID, r.OutputDir)
	fmt.Printf("Contracts: %s\n", strings.Join(r.Contracts, ", "))
	fmt.Printf("Files written: %d\n", len(r.Files))
	if r.Skipped > 0 {
		fmt.Printf("Skipped files: %d (see warnings above)\n", r.Skipped)
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", r.OutputDir)
	fmt.Println("  npm install")
	fmt.Println("  npx hardhat test")
}
