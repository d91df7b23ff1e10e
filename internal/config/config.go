package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	GithubToken string `mapstructure:"github_token"`
	GitName     string `mapstructure:"git_name"`
	GitEmail    string `mapstructure:"git_email"`
	Affiliation string `mapstructure:"affiliation"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		GitName:     "repoclean",
		GitEmail:    "noreply@github.com",
		Affiliation: "owner",
	}
}

var validAffiliations = map[string]bool{
	"owner":               true,
	"collaborator":        true,
	"organization_member": true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// GitHub token is optional at load time - only validate if provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
	}
	if c.GitName == "" {
		return fmt.Errorf("git_name cannot be empty")
	}
	if c.GitEmail == "" {
		return fmt.Errorf("git_email cannot be empty")
	}
	if !validAffiliations[c.Affiliation] {
		return fmt.Errorf("invalid affiliation %q: expected owner, collaborator or organization_member", c.Affiliation)
	}
	return nil
}

// ValidateForGitHubOperations validates that a token is present before any
// network call is made.
func (c *Config) ValidateForGitHubOperations() error {
	if c.GithubToken == "" {
		return fmt.Errorf("github_token is required: set the GITHUB_TOKEN environment variable")
	}
	return c.Validate()
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	// Validate token format patterns
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	personalPAT := regexp.MustCompile(`^ghp_[a-zA-Z0-9]{36}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!personalPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateRepositoryFullName validates an owner/repo pair as it appears in
// the commit-list and report documents.
func ValidateRepositoryFullName(fullName string) error {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return fmt.Errorf("invalid repository %q: expected owner/name", fullName)
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".repoclean")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("REPOCLEAN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	// BindEnv allows multiple env vars - it will check them in order
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "REPOCLEAN_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := viper.BindEnv("git_name", "REPOCLEAN_GIT_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind git_name env: %w", err)
	}
	if err := viper.BindEnv("git_email", "REPOCLEAN_GIT_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind git_email env: %w", err)
	}
	if err := viper.BindEnv("affiliation", "REPOCLEAN_AFFILIATION"); err != nil {
		return nil, fmt.Errorf("failed to bind affiliation env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("git_name", defaults.GitName)
	viper.SetDefault("git_email", defaults.GitEmail)
	viper.SetDefault("affiliation", defaults.Affiliation)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
