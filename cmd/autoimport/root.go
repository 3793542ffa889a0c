package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	autoimportlog "github.com/davetashner/autoimport/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// Configuration flag values for the root command.
var (
	flagLibrary        string
	flagPath           string
	flagYes            bool
	flagDryRun         bool
	flagSkipInstall    bool
	flagPackageManager string
	flagRequireClean   bool
)

// rootCmd configures auto-importing when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "autoimport",
	Short: "Configure on-demand component imports for a Vue + Vite project",
	Long: `autoimport wires unplugin-auto-import and unplugin-vue-components into a
Vue + Vite project for a UI component library.

It installs the plugins and the library with the project's package manager,
registers both plugins with the library's resolver in vite.config.ts (or .js),
adds the generated declaration files to tsconfig.json and writes placeholder
components.d.ts and auto-imports.d.ts files.

Supported libraries: element-plus, ant-design-vue, naive-ui, vant.

Defaults can be stored in .autoimport.yaml in the project root or in
~/.config/autoimport/config.yaml. Flags override both.`,
	Example: `  autoimport -l element-plus
  autoimport -l vant -p ./web --skip-install
  autoimport --dry-run -l naive-ui`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		autoimportlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runConfigure,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	f := rootCmd.Flags()
	f.StringVarP(&flagLibrary, "library", "l", "", "component library to configure (element-plus, ant-design-vue, naive-ui, vant)")
	f.StringVarP(&flagPath, "path", "p", ".", "project directory")
	f.BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	f.BoolVar(&flagDryRun, "dry-run", false, "show what would change without installing or writing files")
	f.BoolVar(&flagSkipInstall, "skip-install", false, "do not run the package manager")
	f.StringVar(&flagPackageManager, "package-manager", "", "package manager to use instead of the detected one (npm, yarn, pnpm)")
	f.BoolVar(&flagRequireClean, "require-clean", false, "refuse to rewrite files that have uncommitted git changes")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
