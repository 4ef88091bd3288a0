package main

import (
	"github.com/lehigh-university-libraries/curator/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/curator/format/csv"
	_ "github.com/lehigh-university-libraries/curator/format/datacite"
	_ "github.com/lehigh-university-libraries/curator/format/iso19139"
	_ "github.com/lehigh-university-libraries/curator/format/json"
	_ "github.com/lehigh-university-libraries/curator/format/yaml"
)

func main() {
	cmd.Execute()
}
