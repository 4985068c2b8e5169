package steps

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/launchkit/launchkit/cli/configure"
	"github.com/launchkit/launchkit/cli/create/bootstrap"
	create_ctx "github.com/launchkit/launchkit/cli/create/context"
	"github.com/launchkit/launchkit/cli/util"
)

const defaultBranch = "main"

var errNoIdentity = errors.New("git user name and email are not configured")

// InitGitRepository represents a step of the git repository initialization.
type InitGitRepository struct {
	// Now returns current time. time.Now is used if not set.
	Now func() time.Time
}

// signature returns commit author from the global git configuration.
func (step InitGitRepository) signature() (*object.Signature, error) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return nil, err
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return nil, errNoIdentity
	}
	now := time.Now
	if step.Now != nil {
		now = step.Now
	}
	return &object.Signature{Name: cfg.User.Name, Email: cfg.User.Email, When: now()}, nil
}

// commitMessage returns a message of the initial commit.
func commitMessage(createCtx *create_ctx.CreateCtx) string {
	if createCtx.CliOpts != nil && createCtx.CliOpts.Git != nil &&
		createCtx.CliOpts.Git.CommitMessage != "" {
		return createCtx.CliOpts.Git.CommitMessage
	}
	return configure.DefaultCommitMessage
}

// Run initializes a git repository in the project directory and commits all files.
// Failures are reported as warnings.
func (step InitGitRepository) Run(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	if createCtx.NoGit {
		log.Debug("Git repository initialization is skipped")
		return nil
	}

	gitVersion, err := util.ProbeBinary("git")
	if err != nil {
		log.Warnf("git is not available, repository is not initialized: %s", err)
		return nil
	}
	log.Debugf("Found %s", gitVersion)

	if _, err = git.PlainOpenWithOptions(templateCtx.AppPath,
		&git.PlainOpenOptions{DetectDotGit: true}); err == nil {
		log.Warnf("%s is already inside a git repository, skipping initialization",
			util.RelativeToCurrentWorkingDir(templateCtx.AppPath))
		return nil
	}

	if err = step.initRepository(createCtx, templateCtx); err != nil {
		log.Warnf("Failed to initialize git repository: %s", err)
	}
	return nil
}

func (step InitGitRepository) initRepository(createCtx *create_ctx.CreateCtx,
	templateCtx *TemplateCtx,
) error {
	repo, err := git.PlainInitWithOptions(templateCtx.AppPath, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(defaultBranch),
		},
	})
	if err != nil {
		return err
	}
	templateCtx.GitInitialized = true

	gitIgnorePath := filepath.Join(templateCtx.AppPath, ".gitignore")
	if !util.IsRegularFile(gitIgnorePath) {
		if err = os.WriteFile(gitIgnorePath, bootstrap.GitIgnore(), 0644); err != nil {
			return err
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	patterns, err := gitignore.ReadPatterns(worktree.Filesystem, nil)
	if err != nil {
		return err
	}
	worktree.Excludes = append(worktree.Excludes, patterns...)
	if err = worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return err
	}

	author, err := step.signature()
	if err != nil {
		log.Warnf("Repository is initialized without a commit: %s", err)
		return nil
	}
	if _, err = worktree.Commit(commitMessage(createCtx), &git.CommitOptions{
		Author: author,
	}); err != nil {
		return err
	}
	log.Infof("Initialized a git repository")
	return nil
}
