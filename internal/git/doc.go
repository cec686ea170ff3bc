// Package git provides the Git operations sprout performs on a freshly
// scaffolded project, executed through a command.Runner.
//
// # Repository Operations
//
// A Repo binds a working directory to a Runner:
//
//	repo := git.NewRepo(root, command.ExecRunner{})
//	repo.Init(ctx, "master")
//	repo.AddAll(ctx)
//	repo.Commit(ctx, "First Commit")
//	repo.AddRemote(ctx, "origin", url)
//	repo.Push(ctx, "origin", "master")
//
// # Ad-hoc Commands
//
// Run and RunContext execute git in the current directory and return the
// trimmed stdout, for checks such as the doctor's version check:
//
//	out, err := git.Run("--version")
//
// # Error Handling
//
// Failures are *output.ExitError values (exit code 2) whose message carries
// git's stderr, so a step can report them verbatim.
package git
