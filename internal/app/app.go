package app

import (
	"fmt"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "extract":
		return runExtract(args[1:])
	case "validate":
		return runValidate(args[1:])
	case "report":
		return runReport(args[1:])
	case "hosts":
		return runHosts(args[1:])
	case "awards":
		return runAwards(args[1:])
	case "winners":
		return runWinners(args[1:])
	case "nominees":
		return runNominees(args[1:])
	case "presenters":
		return runPresenters(args[1:])
	case "serve":
		return runServe(args[1:])
	case "health":
		return runHealth(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "gala CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gala <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  extract     Run the full extraction pipeline over a corpus file")
	fmt.Fprintln(os.Stderr, "  validate    Validate corpus records against the tweet schema")
	fmt.Fprintln(os.Stderr, "  report      Run extraction and print the plain-text report")
	fmt.Fprintln(os.Stderr, "  hosts       Print the detected ceremony hosts")
	fmt.Fprintln(os.Stderr, "  awards      Print the award taxonomy, or mined names with --input")
	fmt.Fprintln(os.Stderr, "  winners     Print per-award winners")
	fmt.Fprintln(os.Stderr, "  nominees    Print nominees, optionally for one --award")
	fmt.Fprintln(os.Stderr, "  presenters  Print presenters, optionally for one --award")
	fmt.Fprintln(os.Stderr, "  serve       Start the stored-results API server")
	fmt.Fprintln(os.Stderr, "  health      Verify database connectivity")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"gala <command> -h\" for command-specific flags.")
}
