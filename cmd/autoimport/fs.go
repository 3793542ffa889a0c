package main

import (
	"os"

	"github.com/davetashner/autoimport/internal/prompt"
	"github.com/davetashner/autoimport/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// cmdExecutor runs the package manager. Tests swap in a
// testable.MockCommandExecutor.
var cmdExecutor testable.CommandExecutor = testable.DefaultExecutor()

// cmdGit opens the repository used by --require-clean.
var cmdGit testable.GitOpener = testable.DefaultGitOpener

// stdinIsTerminal reports whether prompts can be shown.
var stdinIsTerminal = func() bool { return prompt.IsInteractive(os.Stdin) }
