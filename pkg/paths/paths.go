// Package paths provides keyword expansion for dbdm config paths.
//
// Config entries may start with a keyword token (!here, !home, !xdg_conf)
// that expands to an absolute directory. Expansion is a pure function of the
// raw string and an EnvironmentView, so the environment is captured once per
// run instead of being read ambiently per link.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dzavadindev/dbdm/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvXDGConfigHome overrides the XDG config directory
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

// Keyword tokens recognized at the start of a config path
const (
	KeywordHere    = "!here"
	KeywordHome    = "!home"
	KeywordXDGConf = "!xdg_conf"
)

// EnvironmentView is a snapshot of the environment values expansion needs.
// Construct one per run and reuse it for every link.
type EnvironmentView struct {
	// Here is the process working directory, backing !here
	Here string

	// Home is the home directory, backing !home. May be empty when the
	// environment does not provide one; expanding !home then fails.
	Home string

	// XDGConfig is the explicit XDG config directory, backing !xdg_conf.
	// When empty, !xdg_conf falls back to <home>/.config.
	XDGConfig string
}

// CurrentEnvironment captures the process environment into a view.
func CurrentEnvironment() (EnvironmentView, error) {
	here, err := os.Getwd()
	if err != nil {
		return EnvironmentView{}, errors.Wrap(err, errors.ErrVarUnresolved, "cannot resolve working directory for !here")
	}
	return EnvironmentView{
		Here:      here,
		Home:      os.Getenv(EnvHome),
		XDGConfig: os.Getenv(EnvXDGConfigHome),
	}, nil
}

// Expand resolves a leading keyword token in raw into an absolute path,
// appending the remainder of the string verbatim. Strings without a
// recognized leading keyword pass through unchanged.
func Expand(raw string, env EnvironmentView) (string, error) {
	switch {
	case strings.HasPrefix(raw, KeywordHere):
		return env.Here + raw[len(KeywordHere):], nil

	case strings.HasPrefix(raw, KeywordHome):
		home, err := env.home(KeywordHome)
		if err != nil {
			return "", err
		}
		return home + raw[len(KeywordHome):], nil

	case strings.HasPrefix(raw, KeywordXDGConf):
		conf, err := env.xdgConfig()
		if err != nil {
			return "", err
		}
		return conf + raw[len(KeywordXDGConf):], nil
	}

	return raw, nil
}

func (env EnvironmentView) home(keyword string) (string, error) {
	if env.Home == "" {
		return "", errors.Newf(errors.ErrVarUnresolved, "cannot expand %s: %s is not set", keyword, EnvHome)
	}
	return env.Home, nil
}

func (env EnvironmentView) xdgConfig() (string, error) {
	if env.XDGConfig != "" {
		return env.XDGConfig, nil
	}
	home, err := env.home(KeywordXDGConf)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}
