// Package cli provides the interactive social command-line client.
//
// It wires configuration, local session state, the REST API client and an
// interactive REPL. Typical flow: restore a persisted session, drain any
// pending flash message, and execute user commands.
//
// Key features:
//   - Signup / Login / Logout with durable session restore
//   - Timeline, tag, profile, search, follower and notification lists,
//     all paged incrementally via the "more" command
//   - Optimistic like and follow toggles (posts and comments) with
//     rollback on failure
//   - Profile settings and photo uploads
//   - One-shot flash messages carried across login/logout boundaries
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
