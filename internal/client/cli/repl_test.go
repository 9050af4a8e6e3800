package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Signup(ctx context.Context) error {
	f.record("signup", "")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", "")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", "")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) VerifyEmail(ctx context.Context, token string) error {
	f.record("verify", token)
	return nil
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error { f.record("forgot", ""); return nil }
func (f *fakeExec) ResetPassword(ctx context.Context, token string) error {
	f.record("reset", token)
	return nil
}
func (f *fakeExec) Timeline(ctx context.Context) error { f.record("timeline", ""); return nil }
func (f *fakeExec) More(ctx context.Context) error     { f.record("more", ""); return nil }
func (f *fakeExec) Tags(ctx context.Context) error     { f.record("tags", ""); return nil }
func (f *fakeExec) TagPosts(ctx context.Context, tag string) error {
	f.record("tag", tag)
	return nil
}
func (f *fakeExec) NewPost(ctx context.Context) error { f.record("post", ""); return nil }
func (f *fakeExec) EditPost(ctx context.Context, id string) error {
	f.record("edit", id)
	return nil
}
func (f *fakeExec) DeletePost(ctx context.Context, id string) error {
	f.record("delete", id)
	return nil
}
func (f *fakeExec) DeletePostPhoto(ctx context.Context, id string) error {
	f.record("delphoto", id)
	return nil
}
func (f *fakeExec) LikePost(ctx context.Context, id string) error { f.record("like", id); return nil }
func (f *fakeExec) UnlikePost(ctx context.Context, id string) error {
	f.record("unlike", id)
	return nil
}
func (f *fakeExec) PostLikes(ctx context.Context, id string) error { f.record("likes", id); return nil }
func (f *fakeExec) Comment(ctx context.Context, id string) error   { f.record("comment", id); return nil }
func (f *fakeExec) PostComments(ctx context.Context, id string) error {
	f.record("comments", id)
	return nil
}
func (f *fakeExec) DeleteComment(ctx context.Context, postID, commentID string) error {
	f.record("uncomment", postID+" "+commentID)
	return nil
}
func (f *fakeExec) LikeComment(ctx context.Context, id string) error {
	f.record("clike", id)
	return nil
}
func (f *fakeExec) UnlikeComment(ctx context.Context, id string) error {
	f.record("cunlike", id)
	return nil
}
func (f *fakeExec) CommentLikes(ctx context.Context, id string) error {
	f.record("clikes", id)
	return nil
}
func (f *fakeExec) Share(ctx context.Context, id string) error { f.record("share", id); return nil }
func (f *fakeExec) PostShares(ctx context.Context, id string) error {
	f.record("shares", id)
	return nil
}
func (f *fakeExec) Notifications(ctx context.Context) error {
	f.record("notifications", "")
	return nil
}
func (f *fakeExec) MarkRead(ctx context.Context, id string) error { f.record("read", id); return nil }
func (f *fakeExec) Search(ctx context.Context, key string) error {
	f.record("search", key)
	return nil
}
func (f *fakeExec) Profile(ctx context.Context, id string) error { f.record("profile", id); return nil }
func (f *fakeExec) Followers(ctx context.Context, id string) error {
	f.record("followers", id)
	return nil
}
func (f *fakeExec) Following(ctx context.Context, id string) error {
	f.record("following", id)
	return nil
}
func (f *fakeExec) Follow(ctx context.Context, id string) error { f.record("follow", id); return nil }
func (f *fakeExec) Unfollow(ctx context.Context, id string) error {
	f.record("unfollow", id)
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error { f.record("passwd", ""); return nil }
func (f *fakeExec) Settings(ctx context.Context) error       { f.record("settings", ""); return nil }
func (f *fakeExec) ProfilePhoto(ctx context.Context, path string) error {
	f.record("avatar", path)
	return nil
}
func (f *fakeExec) CoverPhoto(ctx context.Context, path string) error {
	f.record("cover", path)
	return nil
}
func (f *fakeExec) ChangeEmail(ctx context.Context) error { f.record("email", ""); return nil }
func (f *fakeExec) Message(ctx context.Context) error     { f.record("message", ""); return nil }
func (f *fakeExec) Whoami(ctx context.Context) error      { f.record("whoami", ""); return nil }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"timeline",
		"more",
		"like 42",
		"search alice smith",
		"notifications",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "timeline", "more", "like", "search", "notifications"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgumentsArePassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("like 42\ntag golang\nverify tok-123\nsearch alice smith\n" +
		"uncomment 7 13\nclike 13\nclikes 13\nread 5\nread\navatar photo.jpg\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	got := map[string]string{}
	for i, c := range exec.calls {
		got[c] = exec.args[i]
	}
	if got["like"] != "42" {
		t.Fatalf("like arg: %q", got["like"])
	}
	if got["tag"] != "golang" {
		t.Fatalf("tag arg: %q", got["tag"])
	}
	if got["verify"] != "tok-123" {
		t.Fatalf("verify arg: %q", got["verify"])
	}
	if got["search"] != "alice smith" {
		t.Fatalf("search arg: %q", got["search"])
	}
	if got["uncomment"] != "7 13" {
		t.Fatalf("uncomment args: %q", got["uncomment"])
	}
	if got["clike"] != "13" {
		t.Fatalf("clike arg: %q", got["clike"])
	}
	if got["clikes"] != "13" {
		t.Fatalf("clikes arg: %q", got["clikes"])
	}
	if got["avatar"] != "photo.jpg" {
		t.Fatalf("avatar arg: %q", got["avatar"])
	}

	var reads []string
	for i, c := range exec.calls {
		if c == "read" {
			reads = append(reads, exec.args[i])
		}
	}
	if len(reads) != 2 || reads[0] != "5" || reads[1] != "" {
		t.Fatalf("read args: %v", reads)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("tag\nsearch\nverify\nedit\ndelphoto\nuncomment 7\navatar\ncover\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
