// Package config parses the dbdm link declaration file.
//
// The format is one declaration per line:
//
//	link = <from> <to>
//
// Blank lines and lines starting with # are ignored. Both path tokens go
// through keyword expansion (see pkg/paths), so a config file is only
// parseable against a concrete EnvironmentView.
package config

import (
	"strings"

	"github.com/dzavadindev/dbdm/pkg/errors"
	"github.com/dzavadindev/dbdm/pkg/logging"
	"github.com/dzavadindev/dbdm/pkg/paths"
	"github.com/dzavadindev/dbdm/pkg/types"
)

// DefaultFileName is the config file dbdm looks for in the working directory
const DefaultFileName = "dbdm.conf"

// linkKind is the only declaration kind the grammar accepts
const linkKind = "link"

// Load reads and parses the config file at path.
func Load(fs types.FS, path string, env paths.EnvironmentView) ([]types.LinkSpec, error) {
	logger := logging.GetLogger("config")

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	specs, err := Parse(string(content), env)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Int("links", len(specs)).Msg("Config loaded")
	return specs, nil
}

// Parse turns config text into an ordered list of link specs, preserving
// declaration order. Parsing is fatal on the first malformed line; nothing
// downstream runs on a partially understood config.
func Parse(text string, env paths.EnvironmentView) ([]types.LinkSpec, error) {
	var specs []types.LinkSpec

	for idx, line := range strings.Split(text, "\n") {
		lineNo := idx + 1

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		spec, err := parseLine(line, lineNo, env)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func parseLine(line string, lineNo int, env paths.EnvironmentView) (types.LinkSpec, error) {
	kind, params, found := strings.Cut(line, "=")
	if !found {
		return types.LinkSpec{}, errors.Newf(errors.ErrConfigParse,
			"invalid syntax on line %d: expected '%s = <from> <to>'", lineNo, linkKind)
	}

	kind = strings.TrimSpace(kind)
	if kind != linkKind {
		return types.LinkSpec{}, errors.Newf(errors.ErrConfigParse,
			"unsupported declaration kind %q on line %d: only '%s' is supported", kind, lineNo, linkKind)
	}

	tokens := strings.Fields(params)
	if len(tokens) != 2 {
		return types.LinkSpec{}, errors.Newf(errors.ErrConfigParse,
			"invalid number of values on line %d: expected '%s = <from> <to>', found %d args",
			lineNo, linkKind, len(tokens))
	}

	source, err := paths.Expand(tokens[0], env)
	if err != nil {
		return types.LinkSpec{}, wrapExpandErr(err, lineNo)
	}
	destination, err := paths.Expand(tokens[1], env)
	if err != nil {
		return types.LinkSpec{}, wrapExpandErr(err, lineNo)
	}

	return types.LinkSpec{Source: source, Destination: destination}, nil
}

func wrapExpandErr(err error, lineNo int) error {
	var dbdmErr *errors.DbdmError
	if e, ok := err.(*errors.DbdmError); ok {
		dbdmErr = e
	} else {
		dbdmErr = errors.Wrap(err, errors.ErrVarUnresolved, "expansion failed")
	}
	return dbdmErr.WithDetail("line", lineNo)
}
