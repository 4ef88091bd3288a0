package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/curator/mapping"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect vocabulary tables",
	Long: `List and inspect the vocabulary tables used during extraction.

The embedded tables are shown merged with the file named by vocab.file in
the configuration, when one is set.`,
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Vocabulary tables@%s:\n", tables.Version)
		for _, name := range mapping.Names() {
			table, _ := tables.Select(name)
			fmt.Fprintf(out, "  %-16s %d entries\n", name, tableLen(table))
		}
		return nil
	},
}

var vocabShowCmd = &cobra.Command{
	Use:   "show [table]",
	Short: "Show a table as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}

		name := strings.ReplaceAll(strings.ToLower(args[0]), "-", "_")
		table, ok := tables.Select(name)
		if !ok {
			return fmt.Errorf("unknown table: %s (available: %s)", args[0], strings.Join(mapping.Names(), ", "))
		}

		out, err := yaml.Marshal(table)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func tableLen(table any) int {
	switch t := table.(type) {
	case map[string]string:
		return len(t)
	case []mapping.GCMDScheme:
		return len(t)
	case []mapping.ResourceType:
		return len(t)
	default:
		return 0
	}
}

func init() {
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabShowCmd)
}
