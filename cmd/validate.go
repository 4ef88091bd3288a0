package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/curator/extract"
	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/hub"
)

var (
	validateInput   string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a record without writing output",
	Long: `Validate an XML record by running the upload checks and a full extraction.

This command reports the payloads found in the file and how many entries each
section produced. Useful for checking a record before it is submitted.

Input defaults to stdin.

Examples:
  curator validate record.xml
  curator validate -i record.xml --verbose
  cat record.xml | curator validate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := validateInput
	if len(args) == 1 {
		path = args[0]
	}

	f, err := readUpload(cfg, path)
	if err != nil {
		return err
	}

	opts, closeOpts, err := parseOptions(cmd.Context(), cfg, sourceName(path))
	if err != nil {
		return err
	}
	defer closeOpts()

	result, err := extract.New(opts).Extract(cmd.Context(), f.Data)
	if err != nil {
		return err
	}

	payloads := format.Detect(f.Data)
	printSummary(cmd.OutOrStdout(), sourceName(path), payloads, result, validateVerbose)
	return nil
}

func printSummary(w io.Writer, source string, payloads []string, r *hub.Result, verbose bool) {
	fmt.Fprintf(w, "✓ Valid: %s\n", source)
	if len(payloads) > 0 {
		fmt.Fprintf(w, "  Payloads: %s\n", strings.Join(payloads, ", "))
	}
	if r.DOI != "" {
		fmt.Fprintf(w, "  DOI: %s\n", r.DOI)
	}
	if len(r.Titles) > 0 {
		fmt.Fprintf(w, "  Title: %s\n", truncate(r.Titles[0].Title, 60))
	}

	fmt.Fprintln(w, "\nSections:")
	for _, s := range []struct {
		name  string
		count int
	}{
		{"Titles", len(r.Titles)},
		{"Authors", len(r.Authors)},
		{"Contributors", len(r.Contributors)},
		{"Descriptions", len(r.Descriptions)},
		{"Dates", len(r.Dates)},
		{"Free keywords", len(r.FreeKeywords)},
		{"GCMD keywords", len(r.GCMDKeywords)},
		{"Coverages", len(r.Coverages)},
		{"Licenses", len(r.Licenses)},
	} {
		fmt.Fprintf(w, "  %-14s %d\n", s.name+":", s.count)
	}

	if !verbose {
		return
	}

	fmt.Fprintln(w, "\nPeople:")
	for _, a := range r.Authors {
		fmt.Fprintf(w, "  author       %s [%s]%s\n", a.FullName(), strings.Join(a.Roles, ", "), contactMark(a))
	}
	for _, c := range r.Contributors {
		fmt.Fprintf(w, "  contributor  %s [%s]\n", c.FullName(), strings.Join(c.Roles, ", "))
	}
}

func contactMark(a hub.Author) string {
	if !a.IsContact {
		return ""
	}
	if a.Email != "" {
		return " contact <" + a.Email + ">"
	}
	return " contact"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
