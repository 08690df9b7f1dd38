package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-itinerary/internal/assets"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render itineraries to HTML, PDF, terminal, or text")
	fmt.Fprintln(w, "  classify   Print the classified blocks of an itinerary as YAML")
	fmt.Fprintln(w, "  suggest    Suggest destinations or list interest presets")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'itinerary help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      Log format: console, json")
}

// printRenderFlags prints the render flag groups.
func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (- = stdout)")
	fmt.Fprintln(w, "  -f, --format <s>          Format: html, pdf, term, text (default: html)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trip:")
	fmt.Fprintln(w, "      --city <s>            Destination city")
	fmt.Fprintln(w, "  -i, --interest <s>        Interest tag (repeatable)")
	fmt.Fprintln(w, "      --toggle-interest <s> Add a tag, or remove it if set (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s> Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Day Index:")
	fmt.Fprintln(w, "      --toc                 Add a day index")
	fmt.Fprintln(w, "      --toc-title <s>       Index heading text")
	fmt.Fprintln(w, "      --toc-depth <n>       2 = days, 3 = days and sections")
	fmt.Fprintln(w, "      --no-toc              Disable day index")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintf(w, "      --style <s>           Style: %s, a CSS file, or inline CSS\n", strings.Join(assets.StyleNames(), ", "))
	fmt.Fprintln(w, "      --css <path>          Extra CSS file applied after the style")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Terminal:")
	fmt.Fprintln(w, "      --width <n>           Wrap width (default: 80)")
	fmt.Fprintln(w, "      --color <s>           Colors: auto, always, never")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render itineraries. Several inputs are rendered in parallel.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Itinerary file, directory (scans *.txt, *.md, *.text), glob")
	fmt.Fprintln(w, "           pattern such as 'trips/**/*.txt', or - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output names default to <city>_itinerary.<ext>, or <input>_itinerary.<ext>")
	fmt.Fprintln(w, "without a city. The term format writes to stdout unless -o is given.")
	fmt.Fprintln(w)
	printRenderFlags(w)
}

// printClassifyUsage prints usage for the classify command.
func printClassifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary classify [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the blocks of an itinerary as YAML: kind, ordinal, text, and")
	fmt.Fprintln(w, "inline spans. Reads stdin when no input is given.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printSuggestUsage prints usage for the suggest command.
func printSuggestUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary suggest [query] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Suggest destinations. An empty query lists popular destinations.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --limit <n>           Maximum suggestions (default: 6)")
	fmt.Fprintln(w, "      --interests           List interest presets instead")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: itinerary config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML. Accepts every render flag.")
	fmt.Fprintln(w)
	printRenderFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "classify":
		printClassifyUsage(env.Stdout)
	case "suggest":
		printSuggestUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: itinerary version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: itinerary help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
