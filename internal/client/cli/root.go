package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if sess := a.authService.Current(); sess != nil {
		return fmt.Sprintf("(%s) %s", sess.User.Username, a.currentPath)
	}
	return "(logged out)"
}

// Root runs the console's read–eval–print loop until EOF or exit.
//
// Commands while logged out: help, login, exit|quit.
//
// Commands while logged in:
//   - ls, cd <name>, up, pwd    — browse the virtual folder tree
//   - find <term>               — substring search over names and paths
//   - edit <id>                 — patch document metadata
//   - archive <id>              — archive a document (prompts mode/until/note)
//   - archivefolder <id>        — archive a folder
//   - archived                  — enter the archive browser
//   - stage <path>, batch, annotate <n>, unstage <n>, submit — batch uploads
//   - logout, exit|quit
//
// Handlers report their own errors; the loop never aborts on a failed
// command.
func (a *App) Root(ctx context.Context) {
	printlnFn("dockeep admin console (type 'help' for commands)")

	for {
		fmt.Printf("dockeep %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ls, cd <name>, up, pwd, find <term>, edit <id>, archive <id>, archivefolder <id>, archived, stage <path>, batch, annotate <n>, unstage <n>, submit, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			a.dispatch(ctx, cmd, args)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "ls", "l":
		_ = a.List(ctx)

	case "cd":
		if len(args) == 0 {
			printlnFn("Usage: cd <folder name>")
			return
		}
		_ = a.ChangeDir(ctx, strings.Join(args, " "))

	case "up":
		a.Up()

	case "pwd":
		a.PrintWorkingDir()

	case "find":
		if len(args) == 0 {
			printlnFn("Usage: find <term>")
			return
		}
		_ = a.Find(ctx, strings.Join(args, " "))

	case "edit":
		if len(args) == 0 {
			printlnFn("Usage: edit <document id>")
			return
		}
		_ = a.Edit(ctx, args[0])

	case "archive":
		if len(args) == 0 {
			printlnFn("Usage: archive <document id>")
			return
		}
		_ = a.Archive(ctx, args[0], false)

	case "archivefolder":
		if len(args) == 0 {
			printlnFn("Usage: archivefolder <folder id>")
			return
		}
		_ = a.Archive(ctx, args[0], true)

	case "archived":
		_ = a.Archived(ctx)

	case "stage":
		if len(args) == 0 {
			printlnFn("Usage: stage <local file path>")
			return
		}
		_ = a.Stage(strings.Join(args, " "))

	case "batch":
		a.ShowQueue()

	case "annotate":
		n, ok := parseRowNumber(args)
		if !ok {
			printlnFn("Usage: annotate <item number>")
			return
		}
		_ = a.Annotate(n)

	case "unstage":
		n, ok := parseRowNumber(args)
		if !ok {
			printlnFn("Usage: unstage <item number>")
			return
		}
		_ = a.Unstage(n)

	case "submit":
		_ = a.Submit(ctx)

	default:
		printlnFn("Unknown command:", cmd)
	}
}

func parseRowNumber(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
