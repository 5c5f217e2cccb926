//go:build linux || darwin

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"github.com/pranshuparmar/pstree/internal/config"
	"github.com/pranshuparmar/pstree/internal/output"
	"github.com/pranshuparmar/pstree/internal/proc"
	"github.com/pranshuparmar/pstree/internal/tree"
	"github.com/pranshuparmar/pstree/internal/tui"
)

// go build -ldflags "-X main.version=v1.1" -o pstree ./cmd/pstree
var version = "v1.0"

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "pstree"))

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: pstree [-p] [-n] [-V] [--pid N [-s]] [--json] [-i] [options]\n\n")
	fmt.Fprintf(w, "Show running processes and their threads as a tree.\n")
	fmt.Fprintf(w, "Nothing is printed unless -p, -n, --json or -i is given.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func checkUpdate(w io.Writer, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "pranshuparmar",
		Repository: "pstree",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(w, "Unable to check for updates: %v\n", err)
		return
	}
	if res.Outdated {
		fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
		return
	}
	fmt.Fprintf(w, "You are using the latest version: %s\n", currentVer)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("pstree", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	// anything but the known switches is ignored
	fs.ParseErrorsWhitelist.UnknownFlags = true

	showPIDsFlag := fs.BoolP("show-pids", "p", false, "show pids next to each name")
	numericSortFlag := fs.BoolP("numeric-sort", "n", false, "sort siblings by pid")
	versionFlag := fs.BoolP("version", "V", false, "print the version banner")
	pidFlag := fs.Int("pid", 0, "only show the subtree rooted at this pid")
	showParentsFlag := fs.BoolP("show-parents", "s", false, "with --pid, also show the ancestors")
	jsonFlag := fs.Bool("json", false, "print the tree as JSON")
	interactiveFlag := fs.BoolP("interactive", "i", false, "page through the tree interactively")
	noColorFlag := fs.Bool("no-color", false, "disable colorized output")
	configFlag := fs.String("config", "", "YAML config file")
	procFlag := fs.String("proc", "", "proc filesystem root (default /proc)")
	strictFlag := fs.Bool("strict", false, "fail on unreadable process entries instead of skipping them")
	inheritFlag := fs.Bool("inherit-thread-names", false, "label threads with their process name")
	verboseFlag := fs.BoolP("verbose", "v", false, "log scan statistics")
	updateFlag := fs.Bool("update", false, "check for a newer release and exit")
	helpFlag := fs.BoolP("help", "h", false, "show this help message")

	if err := fs.Parse(separateSwitches(args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, fs)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if *helpFlag {
		printHelp(stdout, fs)
		return 0
	}
	if *updateFlag {
		checkUpdate(stdout, version)
		return 0
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			output.PrintError(stderr, err, !*noColorFlag)
			return 1
		}
		cfg = loaded
	}
	if *procFlag != "" {
		cfg.ProcRoot = *procFlag
	}
	if *strictFlag {
		cfg.SkipUnreadable = false
	}
	if *inheritFlag {
		cfg.InheritThreadNames = true
	}
	if *noColorFlag {
		cfg.Color = false
	}
	showPIDs := *showPIDsFlag || cfg.ShowPIDs

	// structured output stays machine readable
	quiet := *jsonFlag || *interactiveFlag
	if !quiet {
		output.PrintFlags(stdout, showPIDs, *numericSortFlag, *versionFlag)
	}
	if *versionFlag {
		output.PrintVersion(stdout, version, kernelRelease(), cfg.Color)
	}
	if !showPIDs && !*numericSortFlag && !quiet {
		return 0
	}

	t, err := collect(cfg, *verboseFlag)
	if err != nil {
		output.PrintError(stderr, err, cfg.Color)
		return 1
	}
	if *numericSortFlag {
		t.SortByPID()
	}
	if fs.Changed("pid") {
		t, err = t.Focus(*pidFlag, *showParentsFlag)
		if err != nil {
			output.PrintError(stderr, err, cfg.Color)
			return 1
		}
	}

	opts := tree.RenderOptions{ShowPIDs: showPIDs}
	switch {
	case *jsonFlag:
		out, err := output.ToJSON(t)
		if err != nil {
			output.PrintError(stderr, err, cfg.Color)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case *interactiveFlag:
		if err := tui.Run("pstree "+cfg.ProcRoot, tree.Render(t, opts)); err != nil {
			output.PrintError(stderr, err, cfg.Color)
			return 1
		}
	default:
		if err := output.PrintTree(stdout, t, opts); err != nil {
			output.PrintError(stderr, err, cfg.Color)
			return 1
		}
	}
	return 0
}

// separateSwitches drops grouped short switches such as -np, so only the
// switches given as separate tokens take effect. Values of the long flags
// that take one are passed through untouched.
func separateSwitches(args []string) []string {
	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(kept, args[i:]...)
		case arg == "--pid" || arg == "--config" || arg == "--proc":
			kept = append(kept, arg)
			if i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		case len(arg) > 2 && arg[0] == '-' && arg[1] != '-':
			continue
		default:
			kept = append(kept, arg)
		}
	}
	return kept
}

// collect scans the proc root and assembles the tree in one pass
func collect(cfg *config.Config, verbose bool) (*tree.Tree, error) {
	src := proc.NewSource(cfg.ProcRoot, proc.Options{
		SkipUnreadable:     cfg.SkipUnreadable,
		InheritThreadNames: cfg.InheritThreadNames,
		Verbose:            verbose,
	})
	records, err := src.Scan()
	if err != nil {
		return nil, err
	}
	output.SanitizeRecords(records)

	t, err := tree.Build(records, tree.BuildOptions{PruneKernelOrphans: cfg.PruneKernelOrphans})
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Infoln("built tree of", humanize.Comma(int64(t.Len())), "nodes rooted at", t.Root.Name)
	}
	return t, nil
}
