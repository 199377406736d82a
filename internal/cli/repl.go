package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Create(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Undo(ctx context.Context) error
}

const helpText = "Available commands: create, (l)ist, show <id>, edit <id>, delete <id>, undo, help, exit"

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The first token is the command, the optional second token its argument.
// Unknown commands are reported back to the user. The loop exits on EOF,
// on "exit" or "quit", or once ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers render and
// log their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn("users> ")
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "create":
			_ = a.Create(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "undo":
			_ = a.Undo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
