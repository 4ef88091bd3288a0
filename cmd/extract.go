package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/curator/extract"
	"github.com/lehigh-university-libraries/curator/format"
)

var (
	inputFile     string
	outputFile    string
	outputFormat  string
	multiValueSep string
	pretty        bool
	noHeader      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract metadata from an XML record",
	Long: `Extract structured metadata from a DataCite XML record.

The record may be wrapped in an envelope and may carry an ISO 19139
block whose point of contact details are attached to the matching
authors.

Input defaults to stdin, output defaults to JSON on stdout. The output
format follows the output file extension unless --format is given.

Examples:
  curator extract record.xml
  curator extract -i record.xml --pretty
  curator extract -i record.xml -o record.yaml
  curator extract -i record.xml -f csv --separator ";"
  cat record.xml | curator extract`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	extractCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: json, yaml, csv (default: from output extension, else json)")
	extractCmd.Flags().StringVar(&multiValueSep, "separator", "|", "Multi-value field separator (csv)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the CSV header row")
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	path := inputFile
	if len(args) == 1 {
		path = args[0]
	}

	serializer, err := chooseSerializer(outputFormat, outputFile)
	if err != nil {
		return err
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

	var output io.Writer = os.Stdout
	if outputFile != "" {
		out, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := out.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = out
	}

	serOpts := format.NewSerializeOptions()
	serOpts.Pretty = pretty
	serOpts.MultiValueSeparator = multiValueSep
	serOpts.IncludeHeader = !noHeader

	if err := serializer.Serialize(output, result, serOpts); err != nil {
		return fmt.Errorf("writing %s output: %w", serializer.Name(), err)
	}
	return nil
}

func chooseSerializer(name, output string) (format.Serializer, error) {
	if name != "" {
		return format.GetSerializer(name)
	}
	if output != "" {
		if s, err := format.DefaultRegistry.SerializerForFile(output); err == nil {
			return s, nil
		}
	}
	return format.GetSerializer("json")
}
