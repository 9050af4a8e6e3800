package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, token string) error
	Timeline(ctx context.Context) error
	More(ctx context.Context) error
	Tags(ctx context.Context) error
	TagPosts(ctx context.Context, tag string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, id string) error
	DeletePost(ctx context.Context, id string) error
	DeletePostPhoto(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) error
	UnlikePost(ctx context.Context, id string) error
	PostLikes(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error
	PostComments(ctx context.Context, id string) error
	DeleteComment(ctx context.Context, postID, commentID string) error
	LikeComment(ctx context.Context, id string) error
	UnlikeComment(ctx context.Context, id string) error
	CommentLikes(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	PostShares(ctx context.Context, id string) error
	Notifications(ctx context.Context) error
	MarkRead(ctx context.Context, id string) error
	Search(ctx context.Context, key string) error
	Profile(ctx context.Context, id string) error
	Followers(ctx context.Context, id string) error
	Following(ctx context.Context, id string) error
	Follow(ctx context.Context, id string) error
	Unfollow(ctx context.Context, id string) error
	ChangePassword(ctx context.Context) error
	ChangeEmail(ctx context.Context) error
	Settings(ctx context.Context) error
	ProfilePhoto(ctx context.Context, path string) error
	CoverPhoto(ctx context.Context, path string) error
	Message(ctx context.Context) error
	Whoami(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the social CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - signup           — create an account
//	  - login            — authenticate
//	  - verify <token>   — verify email
//	  - forgot           — request a password reset
//	  - reset <token>    — set a new password
//	  - message          — show the pending flash message
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - (t)imeline, more, tags, tag <name>
//	  - post, edit <id>, delete <id>, delphoto <id>
//	  - like <id>, unlike <id>, likes <id>
//	  - comment <id>, comments <id>, uncomment <post> <comment>
//	  - clike <id>, cunlike <id>, clikes <id>
//	  - share <id>, shares <id>
//	  - (n)otifications, read [id]
//	  - search <key>, profile [id], followers <id>, following <id>
//	  - follow <id>, unfollow <id>
//	  - settings, avatar <path>, cover <path>
//	  - passwd, email, whoami, message, logout, exit
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("social %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func() string {
			if len(args) == 0 {
				return ""
			}
			return args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (t)imeline, more, tags, tag <name>,")
				printlnFn("  post, edit <id>, delete <id>, delphoto <id>,")
				printlnFn("  like <id>, unlike <id>, likes <id>,")
				printlnFn("  comment <id>, comments <id>, uncomment <post> <comment>,")
				printlnFn("  clike <id>, cunlike <id>, clikes <id>,")
				printlnFn("  share <id>, shares <id>, (n)otifications, read [id], search <key>,")
				printlnFn("  profile [id], followers <id>, following <id>, follow <id>, unfollow <id>,")
				printlnFn("  settings, avatar <path>, cover <path>,")
				printlnFn("  passwd, email, whoami, message, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, verify <token>, forgot, reset <token>, message, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <token>")
				continue
			}
			_ = a.VerifyEmail(ctx, args[0])

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			if len(args) == 0 {
				printlnFn("Usage: reset <token>")
				continue
			}
			_ = a.ResetPassword(ctx, args[0])

		case "t", "timeline":
			_ = a.Timeline(ctx)

		case "more":
			_ = a.More(ctx)

		case "tags":
			_ = a.Tags(ctx)

		case "tag":
			if len(args) == 0 {
				printlnFn("Usage: tag <name>")
				continue
			}
			_ = a.TagPosts(ctx, args[0])

		case "post":
			_ = a.NewPost(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditPost(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeletePost(ctx, args[0])

		case "delphoto":
			if len(args) == 0 {
				printlnFn("Usage: delphoto <id>")
				continue
			}
			_ = a.DeletePostPhoto(ctx, args[0])

		case "like":
			_ = a.LikePost(ctx, arg())

		case "unlike":
			_ = a.UnlikePost(ctx, arg())

		case "likes":
			_ = a.PostLikes(ctx, arg())

		case "comment":
			_ = a.Comment(ctx, arg())

		case "comments":
			_ = a.PostComments(ctx, arg())

		case "uncomment":
			if len(args) < 2 {
				printlnFn("Usage: uncomment <post> <comment>")
				continue
			}
			_ = a.DeleteComment(ctx, args[0], args[1])

		case "clike":
			_ = a.LikeComment(ctx, arg())

		case "cunlike":
			_ = a.UnlikeComment(ctx, arg())

		case "clikes":
			_ = a.CommentLikes(ctx, arg())

		case "share":
			_ = a.Share(ctx, arg())

		case "shares":
			_ = a.PostShares(ctx, arg())

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.MarkRead(ctx, arg())

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <key>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "profile":
			_ = a.Profile(ctx, arg())

		case "followers":
			_ = a.Followers(ctx, arg())

		case "following":
			_ = a.Following(ctx, arg())

		case "follow":
			_ = a.Follow(ctx, arg())

		case "unfollow":
			_ = a.Unfollow(ctx, arg())

		case "settings":
			_ = a.Settings(ctx)

		case "avatar":
			if len(args) == 0 {
				printlnFn("Usage: avatar <path>")
				continue
			}
			_ = a.ProfilePhoto(ctx, args[0])

		case "cover":
			if len(args) == 0 {
				printlnFn("Usage: cover <path>")
				continue
			}
			_ = a.CoverPhoto(ctx, args[0])

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "email":
			_ = a.ChangeEmail(ctx)

		case "message":
			_ = a.Message(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
