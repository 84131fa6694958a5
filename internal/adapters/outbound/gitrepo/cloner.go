package gitrepo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// DefaultDir is where cloned sources land when no directory is given.
var DefaultDir = filepath.Join("CurrentMBS", "Source")

// Cloner implements domain.RepoCloner.
type Cloner struct {
	// Progress receives the remote's sideband output. Nil discards it.
	Progress io.Writer
}

func NewCloner(progress io.Writer) *Cloner {
	return &Cloner{Progress: progress}
}

// Clone empties dir (creating it if needed) and clones url into it.
func (c *Cloner) Clone(ctx context.Context, url, dir string) error {
	if url == "" {
		return fmt.Errorf("no repository url given")
	}
	if err := clearDir(dir); err != nil {
		return fmt.Errorf("preparing %s: %w", dir, err)
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Progress: c.Progress,
	})
	if err != nil {
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}

// clearDir removes every entry inside dir but keeps dir itself.
func clearDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
