package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/nestkit/create-module/internal/output"
)

// Flag names checked with Flags().Changed.
const (
	flagAddTsconfigPath = "add-tsconfig-path"
	flagTimestamps      = "timestamps"
)

// rootFlags holds the values of the command-line flags.
type rootFlags struct {
	entity          string
	addTsconfigPath bool
	projectDir      string
	configFile      string
	dryRun          bool
	output          string
	verbose         bool
	timestamps      bool
}

func (f *rootFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.entity, "entity", "e", "", "Entity name (defaults to the module name)")
	fs.BoolVar(&f.addTsconfigPath, flagAddTsconfigPath, false, "Import through an @/<module> tsconfig path alias and add the alias (env: CREATE_MODULE_ADD_TSCONFIG_PATH)")
	fs.StringVar(&f.projectDir, "project-dir", "", "NestJS project root (defaults to the working directory)")
	fs.StringVar(&f.configFile, "config", "", "Path to config file (defaults to <project-dir>/.create-module.yaml)")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Show what would be generated without writing anything")
	fs.StringVarP(&f.output, "output", "o", string(output.FormatText), "Report format: "+strings.Join(output.ValidFormats(), ", "))
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
	fs.BoolVar(&f.timestamps, flagTimestamps, false, "Show timestamps in log output (env: CREATE_MODULE_LOG_TIMESTAMPS)")
}
