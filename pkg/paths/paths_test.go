package paths

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzavadindev/dbdm/pkg/errors"
)

func TestExpand(t *testing.T) {
	env := EnvironmentView{
		Here:      "/proj",
		Home:      "/home/u",
		XDGConfig: "",
	}

	tests := []struct {
		name     string
		raw      string
		env      EnvironmentView
		expected string
		wantErr  bool
	}{
		{
			name:     "here keyword",
			raw:      "!here/nvim",
			env:      env,
			expected: "/proj/nvim",
		},
		{
			name:     "home keyword",
			raw:      "!home/.vimrc",
			env:      env,
			expected: "/home/u/.vimrc",
		},
		{
			name:     "xdg_conf falls back to home config",
			raw:      "!xdg_conf/nvim",
			env:      env,
			expected: "/home/u/.config/nvim",
		},
		{
			name:     "xdg_conf uses explicit value when set",
			raw:      "!xdg_conf/nvim",
			env:      EnvironmentView{Here: "/proj", Home: "/home/u", XDGConfig: "/etc/xdg"},
			expected: "/etc/xdg/nvim",
		},
		{
			name:     "absolute path passes through",
			raw:      "/etc/hosts",
			env:      env,
			expected: "/etc/hosts",
		},
		{
			name:     "unrecognized leading text passes through",
			raw:      "!somewhere/else",
			env:      env,
			expected: "!somewhere/else",
		},
		{
			name:     "bare keyword expands to the directory itself",
			raw:      "!home",
			env:      env,
			expected: "/home/u",
		},
		{
			name:    "home unset fails",
			raw:     "!home/.vimrc",
			env:     EnvironmentView{Here: "/proj"},
			wantErr: true,
		},
		{
			name:    "xdg_conf with neither xdg nor home fails",
			raw:     "!xdg_conf/nvim",
			env:     EnvironmentView{Here: "/proj"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.raw, tt.env)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrVarUnresolved))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandKeywordIsPrefixOnly(t *testing.T) {
	env := EnvironmentView{Here: "/proj", Home: "/home/u"}

	// A keyword in the middle of the string is not a keyword
	got, err := Expand("/srv/!home/data", env)
	require.NoError(t, err)
	assert.Equal(t, "/srv/!home/data", got)
}

func TestCurrentEnvironment(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")
	t.Setenv(EnvXDGConfigHome, "/home/tester/cfg")

	env, err := CurrentEnvironment()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, wd, env.Here)
	assert.Equal(t, "/home/tester", env.Home)
	assert.Equal(t, "/home/tester/cfg", env.XDGConfig)
}
