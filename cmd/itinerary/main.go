package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/assets"
	"github.com/alnah/go-itinerary/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names.
var commands = []string{"render", "classify", "suggest", "config", "version", "help"}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the subcommand and returns the process exit code.
// A bare itinerary file is rendered with the default flags.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "render":
		err = runRenderCmd(ctx, rest, env)
	case "classify":
		err = runClassifyCmd(ctx, rest, env)
	case "suggest":
		err = runSuggestCmd(rest, env)
	case "config":
		err = runConfigCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "itinerary %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		if !looksLikeItinerary(cmd) {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		err = runRenderCmd(ctx, args[1:], env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s is a subcommand name.
func isCommand(s string) bool {
	for _, c := range commands {
		if s == c {
			return true
		}
	}
	return false
}

// looksLikeItinerary reports whether arg is an input rather than a command:
// stdin or a file with a text extension.
func looksLikeItinerary(arg string) bool {
	if arg == stdio {
		return true
	}
	if isCommand(arg) {
		return false
	}
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".txt", ".md", ".text":
		return true
	}
	return false
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, itinerary.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, itinerary.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, itinerary.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	}
	return ""
}
