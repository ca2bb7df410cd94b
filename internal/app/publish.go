package app

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// commitVerbs seed the generated commit message.
var commitVerbs = []string{"Update", "Add", "Revise", "Improve", "Enhance"}

// Publish stages every working-tree change in the site repository, commits
// with a generated message, and pushes to the configured remote branch. A
// clean worktree makes the commit step fail (go-git's ErrEmptyCommit) and a
// rejected push propagates as-is; there is no retry or rebase.
func (a *Automator) Publish() error {
	repo, err := git.PlainOpen(a.cfg.SiteDir)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}

	msg := fmt.Sprintf("%s daily content: %s", choose(a.rand, commitVerbs), a.now().Format("2006-01-02"))
	if _, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  a.cfg.AuthorName,
			Email: a.cfg.AuthorEmail,
			When:  a.now(),
		},
	}); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	refspec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", a.cfg.Branch, a.cfg.Branch))
	if err := repo.Push(&git.PushOptions{
		RemoteName: a.cfg.Remote,
		RefSpecs:   []gitconfig.RefSpec{refspec},
	}); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	return nil
}
