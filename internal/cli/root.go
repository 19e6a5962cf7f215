package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phpenv-dev/phpenv-ini/internal/config"
	"github.com/phpenv-dev/phpenv-ini/internal/fragment"
	"github.com/phpenv-dev/phpenv-ini/internal/logging"
	"github.com/phpenv-dev/phpenv-ini/internal/phpenv"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "phpenv-ini",
	Short: "Manage PHP ini config fragments for the active phpenv version",
	Long: `phpenv-ini manages PHP .ini config fragments for the PHP version
currently selected by phpenv. Fragments live in a per-version
conf.d-available directory; enabling one symlinks it into conf.d where
the PHP runtime loads it.

Examples:
  phpenv-ini ext-new igbinary      Create an extension fragment
  phpenv-ini enable ext-igbinary   Load it in the active version
  phpenv-ini list                  Show enabled and disabled fragments`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, quiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics")
}

// legacyCommands maps the historical single-flag surface onto
// subcommands, so invocations like "phpenv-ini -e ext-igbinary" keep
// working.
var legacyCommands = map[string]string{
	"-c": "cfg-add", "--cfg-add": "cfg-add",
	"-x": "ext-add", "--ext-add": "ext-add",
	"-X": "ext-new", "--ext-new": "ext-new",
	"-r": "rm", "--rm": "rm",
	"-e": "enable", "--enable": "enable",
	"-d": "disable", "--disable": "disable",
	"-l": "list", "--list": "list",
	"-s": "show", "--show": "show",
	"-V": "version", "--version": "version",
	"--complete": "complete",
}

// rewriteLegacyArgs replaces the first legacy flag with its subcommand,
// skipping over the persistent verbosity flags so invocations like
// "phpenv-ini -v -e foo" still dispatch. Any other token ends the scan.
func rewriteLegacyArgs(args []string) []string {
	for i, arg := range args {
		if name, ok := legacyCommands[arg]; ok {
			out := make([]string, len(args))
			copy(out, args)
			out[i] = name
			return out
		}
		switch arg {
		case "-v", "--verbose", "-q", "--quiet":
			continue
		}
		return args
	}
	return args
}

// Execute runs the CLI and returns the process exit code: 0 on success,
// 1 on errors, 255 when the system PHP is active.
func Execute() int {
	rootCmd.SetArgs(rewriteLegacyArgs(os.Args[1:]))
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, fragment.ErrUnsupportedVersion) {
		fmt.Fprintln(os.Stderr, "Error: the system PHP is active; select a managed version first")
		printInstalledVersions(os.Stderr)
		return 255
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

func printInstalledVersions(w *os.File) {
	cfg, err := config.Load()
	if err != nil {
		return
	}
	versions, err := phpenv.NewCLI(cfg.Phpenv).ListInstalledVersions()
	if err != nil || len(versions) == 0 {
		return
	}
	fmt.Fprintln(w, "Installed versions:")
	for _, v := range versions {
		fmt.Fprintf(w, "  %s\n", v)
	}
}

// newManager builds the fragment manager for the active version.
func newManager() (*fragment.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	host := phpenv.NewCLI(cfg.Phpenv)
	root, err := cfg.ResolveRoot(host)
	if err != nil {
		return nil, err
	}
	return fragment.NewManager(host, root)
}
