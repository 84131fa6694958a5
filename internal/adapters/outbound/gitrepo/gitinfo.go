// Package gitrepo acquires analyzed repositories and reads their version
// facts with go-git.
package gitrepo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Info implements domain.GitInfo using go-git.
type Info struct{}

func NewInfo() *Info {
	return &Info{}
}

// IsGitRepo reports whether path is inside a git work tree.
func (g *Info) IsGitRepo(path string) bool {
	_, err := open(path)
	return err == nil
}

// CommitHash returns the HEAD commit of the repository containing path.
func (g *Info) CommitHash(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}
