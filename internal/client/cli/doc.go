// Package cli provides the interactive dockeep admin console.
//
// It wires configuration, the local state store, the REST client, and the
// application services into a REPL. Typical flow: restore a persisted
// session (or prompt for credentials), then browse the virtual folder tree,
// manage the archive, and run batch uploads.
//
// Key features:
//   - Login / Logout with a locally persisted, sealed session
//   - Folder tree browsing over flat document paths (ls, cd, up, pwd, find)
//   - Archive browser with breadcrumb navigation, archive and restore
//   - Batch upload queue: stage, annotate, submit, inspect failures
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
