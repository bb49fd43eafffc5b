package cli

import (
	"fmt"
	"io"
	"os"

	"memo/internal/memos/service"
)

// Run executes a memo subcommand and returns the process exit code.
func Run(args []string, svc service.MemoService) int {
	return run(args, svc, os.Stdout, os.Stderr)
}

func run(args []string, svc service.MemoService, out, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(out)
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "add", "a":
		return runAdd(cmdArgs, svc, out, errOut)
	case "list", "ls", "l":
		return runList(svc, out, errOut)
	case "read", "show", "r":
		return runRead(cmdArgs, svc, out, errOut)
	case "delete", "rm", "del":
		return runDelete(cmdArgs, svc, out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "Unknown command: %s\n", command)
		printUsage(errOut)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `memo - Timestamped plain-text memos with a web view

Usage: memo [flags] [command] [arguments]

Commands:
  add, a          Save a new memo
                  memo add "title" content words...
  list, ls, l     List memos
  read, show, r   Print a memo by list number or filename
                  memo read 2
  delete, rm      Delete a memo by list number or filename
                  memo delete 2
  help            Show this help message

Flags:
  -d, -dir <path>    Memo directory
  -p, -port <n>      HTTP port for the root page
      -headless      Serve HTTP only, without the interactive menu

Running memo without a command starts the interactive menu and the web page.`)
}
