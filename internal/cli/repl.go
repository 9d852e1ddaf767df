package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a seam for tests to capture output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface is the command surface runREPL dispatches to. *App implements
// it; tests substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Papers(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Department(ctx context.Context, args []string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Submit(ctx context.Context) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, args []string) error
	Reject(ctx context.Context, args []string) error
	Document(ctx context.Context, args []string) error
	Records(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Verify(ctx context.Context) error
	Lookup(ctx context.Context) error
}

func printHelp(loggedIn bool) {
	printlnFn("Commands:")
	printlnFn("  papers              browse the published catalog")
	printlnFn("  search <text>       search the catalog by title, author or keywords")
	printlnFn("  dept <name>         filter the catalog by department")
	printlnFn("  next / prev         page through catalog results")
	printlnFn("  verify              verify a thesis file against the ledger")
	printlnFn("  lookup              search ledger records by hash, title, author or tx id")
	printlnFn("  submit              submit a thesis for authentication")
	printlnFn("  pending             list theses awaiting approval")
	printlnFn("  approve <id>        approve a pending thesis")
	printlnFn("  reject <id>         reject a pending thesis")
	printlnFn("  doc <id> [path]     view or save a validation document")
	printlnFn("  records [page]      browse ledger records")
	printlnFn("  stats               show platform statistics")
	if loggedIn {
		printlnFn("  logout              end the current session")
	} else {
		printlnFn("  login               sign in")
		printlnFn("  signup              create an account")
	}
	printlnFn("  exit                quit")
}

func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Printf("thesisledger%s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		var err error
		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())
		case "login":
			err = a.Login(ctx)
		case "signup":
			err = a.Signup(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "papers":
			err = a.Papers(ctx)
		case "search":
			err = a.Search(ctx, args)
		case "dept":
			err = a.Department(ctx, args)
		case "next":
			err = a.NextPage(ctx)
		case "prev":
			err = a.PrevPage(ctx)
		case "submit":
			err = a.Submit(ctx)
		case "pending":
			err = a.Pending(ctx)
		case "approve":
			err = a.Approve(ctx, args)
		case "reject":
			err = a.Reject(ctx, args)
		case "doc":
			err = a.Document(ctx, args)
		case "records":
			err = a.Records(ctx, args)
		case "stats":
			err = a.Stats(ctx)
		case "verify":
			err = a.Verify(ctx)
		case "lookup":
			err = a.Lookup(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("unknown command %q, type 'help'", cmd))
		}

		if err != nil && !errors.Is(err, errAborted) {
			if msg := renderError(err); msg != "" {
				printlnFn(msg)
			}
		}
	}
}
