package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter beam definition file",
	Long: `Write a starter YAML beam definition (a fixed-fixed span with a
midspan point load) to edit and feed back with --config.

Example:
  gobeam init beam.yaml
  gobeam analyze --config beam.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "beam.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
