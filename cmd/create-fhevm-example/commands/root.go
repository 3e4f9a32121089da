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

// Execute runs the create-fhevm-example CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "create-fhevm-example <example> [output-dir]",
		Short: "Generate a standalone Hardhat project for one FHEVM example",
		Long: `create-fhevm-example copies one example contract and its test out of the
FHEVM examples repository and wraps them in a ready-to-run Hardhat project
with deploy script, package.json and tooling configuration.

The output directory defaults to the example id and must not exist yet.`,
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
			report, err := wire.Scaffolder.CreateExample(args[0], outputDir)
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
