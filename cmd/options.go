package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/curator/config"
	"github.com/lehigh-university-libraries/curator/format"
	"github.com/lehigh-university-libraries/curator/mapping"
	"github.com/lehigh-university-libraries/curator/resolver"
	"github.com/lehigh-university-libraries/curator/upload"
)

// loadTables returns the embedded tables merged with the configured
// override file, if any.
func loadTables(c *config.Config) (*mapping.Tables, error) {
	if c == nil || c.Vocab.File == "" {
		return mapping.Default()
	}
	tables, err := mapping.LoadFile(c.Vocab.File)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary file: %w", err)
	}
	return tables, nil
}

// parseOptions builds extraction options from the configuration. The
// returned close function releases the ROR cache.
func parseOptions(ctx context.Context, c *config.Config, source string) (*format.ParseOptions, func(), error) {
	tables, err := loadTables(c)
	if err != nil {
		return nil, nil, err
	}

	opts := &format.ParseOptions{Tables: tables, SourceName: source}
	closeFn := func() {}

	if c.ROR.Enabled {
		ror := resolver.NewROR(c.ROR.BaseURL, c.ROR.Timeout)
		opts.Affiliations = ror

		if c.ROR.CachePath != "" {
			cache, err := resolver.OpenCache(ctx, c.ROR.CachePath, c.ROR.CacheTTL)
			if err != nil {
				slog.Warn("ROR cache unavailable, resolving without it", "path", c.ROR.CachePath, "error", err)
			} else {
				opts.Affiliations = &resolver.Cached{Upstream: ror, Cache: cache}
				closeFn = func() {
					if err := cache.Close(); err != nil {
						slog.Warn("closing ROR cache", "error", err)
					}
				}
			}
		}
	}

	if c.ORCID.Enabled {
		opts.People = resolver.NewORCID(c.ORCID.BaseURL, c.ORCID.Timeout)
	}

	return opts, closeFn, nil
}

// readUpload reads the named file, or stdin for "" or "-", and applies
// the upload checks.
func readUpload(c *config.Config, path string) (f *upload.File, err error) {
	v := upload.NewValidator(c.Upload.MaxBytes)

	var r io.Reader
	name := path
	if path == "" || path == "-" {
		r = os.Stdin
		name = ""
	} else {
		file, openErr := os.Open(path)
		if openErr != nil {
			if os.IsNotExist(openErr) {
				return nil, v.Validate(&upload.File{})
			}
			return nil, fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		r = file
	}

	f, err = v.Read(name, r)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
