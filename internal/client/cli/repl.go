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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadAvatar(ctx context.Context, path string) error
	AvatarURL(ctx context.Context) error
	Exists(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the railticket CLI.
//
// Lines are read from reader, which is shared with the interactive prompts
// of the command handlers. The first token is the command. The loop exits
// on EOF or when the user types "exit" or "quit".
//
//	Not signed in:
//	  help, register, login, exists, reset, exit | quit
//
//	Signed in:
//	  help, whoami, profile, avatar <path>, avatar-url, exists,
//	  delete-account, logout, reset, exit | quit
//
// Handlers report their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rt> %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, avatar <path>, avatar-url, exists, delete-account, logout, reset, exit")
			} else {
				printlnFn("Available commands: register, login, exists, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile", "edit":
			_ = a.EditProfile(ctx)

		case "avatar":
			if len(parts) != 2 {
				printlnFn("Usage: avatar <path>")
				continue
			}
			_ = a.UploadAvatar(ctx, parts[1])

		case "avatar-url":
			_ = a.AvatarURL(ctx)

		case "exists":
			_ = a.Exists(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
