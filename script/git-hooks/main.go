package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"github.com/xhd2015/xgo/support/cmd"
	"github.com/xhd2015/xgo/support/fileutil"
	"github.com/xhd2015/xgo/support/git"
)

// usage:
//
//	go run ./script/git-hooks install
//	go run ./script/git-hooks pre-commit
//	go run ./script/git-hooks pre-commit --no-fmt

const help = `
Commands:
  install                   install the pre-commit hook
  pre-commit                check staged files
  pre-commit --no-fmt       skip the gofmt check

Examples:
 go run ./script/git-hooks install
 go run ./script/git-hooks pre-commit
`

const hookHead = "# walletui git-hooks"
const hookCmd = "go run ./script/git-hooks pre-commit"

// local wallet data that must never reach the repository
var forbiddenFiles = []string{
	"walletui.db",
	"walletui.json",
	"walletui.log",
	"config.json",
	".env",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("requires command: install, pre-commit")
		os.Exit(1)
	}
	command := args[0]
	args = args[1:]

	if command == "--help" || command == "help" {
		fmt.Print(strings.TrimPrefix(help, "\n"))
		return
	}

	var noFmt bool
	_, err := flags.Bool("--no-fmt", &noFmt).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	switch command {
	case "install":
		err = install()
	case "pre-commit":
		err = preCommitCheck(noFmt)
	default:
		fmt.Fprintf(os.Stderr, "unrecognized command: %s\n", command)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func preCommitCheck(noFmt bool) error {
	topLevel, err := git.ShowTopLevel("")
	if err != nil {
		return err
	}
	rootDir, err := filepath.Abs(topLevel)
	if err != nil {
		return err
	}

	output, err := cmd.Dir(rootDir).Output("git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	if err != nil {
		return fmt.Errorf("failed to get staged files: %w", err)
	}

	var goFiles []string
	for _, file := range strings.Split(strings.TrimSpace(output), "\n") {
		if file == "" {
			continue
		}
		if isForbidden(file) {
			return fmt.Errorf("refusing to commit local wallet data: %s", file)
		}
		if strings.HasPrefix(file, "_examples/") {
			continue
		}
		if strings.HasSuffix(file, ".go") {
			goFiles = append(goFiles, file)
		}
	}

	if noFmt || len(goFiles) == 0 {
		return nil
	}
	unformatted, err := cmd.Dir(rootDir).Output("gofmt", append([]string{"-l"}, goFiles...)...)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	unformatted = strings.TrimSpace(unformatted)
	if unformatted != "" {
		return fmt.Errorf("files need gofmt:\n%s", unformatted)
	}
	return nil
}

func isForbidden(file string) bool {
	base := filepath.Base(file)
	for _, name := range forbiddenFiles {
		if base == name {
			return true
		}
	}
	return false
}

func install() error {
	// NOTE: is git dir, not toplevel dir when in worktree mode
	gitDir, err := git.GetGitDir("")
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	err = os.MkdirAll(hooksDir, 0755)
	if err != nil {
		return err
	}

	err = installHook(filepath.Join(hooksDir, "pre-commit"), hookHead, hookCmd)
	if err != nil {
		return fmt.Errorf("pre-commit: %w", err)
	}
	return nil
}

// installHook inserts or replaces the block starting at head. The block
// ends at the first empty line.
func installHook(hookFile string, head string, command string) error {
	var created bool
	err := fileutil.Patch(hookFile, func(data []byte) ([]byte, error) {
		if len(data) == 0 {
			created = true
			data = []byte("#!/usr/bin/env bash")
		}
		lines := strings.Split(string(data), "\n")
		idx := -1
		for i, line := range lines {
			if strings.Contains(line, head) {
				idx = i
				break
			}
		}
		if idx < 0 {
			lines = append(lines, head, command, "")
			return []byte(strings.Join(lines, "\n")), nil
		}
		end := idx + 1
		for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
			end++
		}
		patched := append([]string{}, lines[:idx]...)
		patched = append(patched, head, command, "")
		if end < len(lines) {
			patched = append(patched, lines[end+1:]...)
		}
		return []byte(strings.Join(patched, "\n")), nil
	})
	if err != nil {
		return err
	}
	if created {
		return os.Chmod(hookFile, 0755)
	}
	return nil
}
