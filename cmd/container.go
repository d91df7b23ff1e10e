package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/repoclean/repoclean/internal/config"
	"github.com/repoclean/repoclean/internal/console"
	"github.com/repoclean/repoclean/internal/logger"
	"github.com/repoclean/repoclean/internal/repository"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	printer  *console.Printer
	prompter console.Prompter
	fsRepo   repository.FileSystemRepository
	store    repository.DocumentStore
}

// newContainer creates a new container with all the dependencies. A missing
// .env file is not an error; real environment variables take precedence
// over it either way.
func newContainer() (*container, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(flagDebug)
	if err != nil {
		return nil, err
	}

	printer := console.NewPrinter(os.Stdout, flagPlain)
	fsRepo := repository.FileSystemRepository(afero.NewOsFs())

	return &container{
		cfg:      cfg,
		log:      log,
		printer:  printer,
		prompter: console.NewTerminalPrompter(os.Stdin, printer),
		fsRepo:   fsRepo,
		store:    repository.NewJSONDocumentStore(fsRepo),
	}, nil
}

// githubRepo builds the GitHub API client, requiring a valid token.
func (c *container) githubRepo() (repository.GithubRepository, error) {
	if err := c.cfg.ValidateForGitHubOperations(); err != nil {
		return nil, err
	}
	return repository.NewGithubRepository(c.cfg.GithubToken)
}

// gitRepo builds the git clone/push layer, requiring a valid token.
func (c *container) gitRepo() (repository.GitRepository, error) {
	if err := c.cfg.ValidateForGitHubOperations(); err != nil {
		return nil, err
	}
	return repository.NewGitRepository(c.cfg.GithubToken), nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newDescriptionsCmd())
	rootCmd.AddCommand(newVisibilityCmd())
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
