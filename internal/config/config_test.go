package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateGitHubToken(t *testing.T) {
	cases := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "classic hex token", token: strings.Repeat("a1", 20), wantErr: false},
		{name: "personal access token", token: "ghp_" + strings.Repeat("A", 36), wantErr: false},
		{name: "fine grained token", token: "github_pat_" + strings.Repeat("x", 82), wantErr: false},
		{name: "app token", token: "ghs_" + strings.Repeat("b", 36), wantErr: false},
		{name: "oauth token", token: "gho_" + strings.Repeat("c", 36), wantErr: false},
		{name: "too short", token: "abc123", wantErr: true},
		{name: "wrong prefix", token: "ghx_" + strings.Repeat("d", 36), wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGitHubToken(tc.token)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRepositoryFullName(t *testing.T) {
	require.NoError(t, ValidateRepositoryFullName("octocat/hello-world"))
	require.NoError(t, ValidateRepositoryFullName("a/b"))
	require.Error(t, ValidateRepositoryFullName("no-slash"))
	require.Error(t, ValidateRepositoryFullName("-bad/name"))
	require.Error(t, ValidateRepositoryFullName(strings.Repeat("o", 40)+"/repo"))
}

func TestConfigValidate(t *testing.T) {
	t.Run("Should accept defaults without token", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})
	t.Run("Should reject unknown affiliation", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Affiliation = "everyone"
		require.Error(t, cfg.Validate())
	})
	t.Run("Should require token for GitHub operations", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ValidateForGitHubOperations()
		require.Error(t, err)
		require.Contains(t, err.Error(), "GITHUB_TOKEN")
	})
	t.Run("Should reject malformed token", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.GithubToken = "not-a-token"
		require.Error(t, cfg.Validate())
	})
}
