package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/m-mizutani/reldash/pkg/domain/model"
	"github.com/m-mizutani/reldash/pkg/domain/types"
)

const (
	defaultDataPath   = "scripts/release_raw.csv"
	defaultTopModules = 10
)

// Dashboard holds the release data source and dashboard configuration
type Dashboard struct {
	Data       string
	ConfigFile string
	Top        int
	Title      string
}

// DashboardFile is the content of a TOML or YAML dashboard config file
type DashboardFile struct {
	Title   string        `toml:"title" yaml:"title"`
	Top     int           `toml:"top" yaml:"top"`
	Columns model.Columns `toml:"columns" yaml:"columns"`
}

// DashboardSettings is the dashboard configuration after merging defaults,
// the config file and flags
type DashboardSettings struct {
	Location string
	Columns  model.Columns
	Top      int
	Title    string
}

// Flags returns CLI flags for dashboard configuration
func (c *Dashboard) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data",
			Aliases:     []string{"d"},
			Usage:       "Release CSV location, a local path or gs://bucket/object",
			Value:       defaultDataPath,
			Destination: &c.Data,
			Sources:     cli.EnvVars("RELDASH_DATA"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Dashboard config file (.toml, .yaml or .yml)",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("RELDASH_CONFIG"),
		},
		&cli.IntFlag{
			Name:        "top",
			Usage:       "Number of modules in the module ranking, negative for all (default 10)",
			Destination: &c.Top,
			Sources:     cli.EnvVars("RELDASH_TOP"),
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Dashboard page title",
			Destination: &c.Title,
			Sources:     cli.EnvVars("RELDASH_TITLE"),
		},
	}
}

// Settings merges defaults, the config file and flags. Flags win over the file.
func (c *Dashboard) Settings() (*DashboardSettings, error) {
	settings := &DashboardSettings{
		Location: c.Data,
		Columns:  model.DefaultColumns(),
		Top:      defaultTopModules,
	}
	if settings.Location == "" {
		settings.Location = defaultDataPath
	}

	if c.ConfigFile != "" {
		file, err := LoadDashboardFile(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		settings.Columns = file.Columns.Merge(settings.Columns)
		if file.Top != 0 {
			settings.Top = file.Top
		}
		if file.Title != "" {
			settings.Title = file.Title
		}
	}

	if c.Top != 0 {
		settings.Top = c.Top
	}
	if c.Title != "" {
		settings.Title = c.Title
	}

	return settings, nil
}

// LoadDashboardFile reads a dashboard config file. The format follows the
// file extension.
func LoadDashboardFile(path string) (*DashboardFile, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dashboard config",
			goerr.T(types.ErrTagConfig), goerr.V("path", path))
	}

	var file DashboardFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(raw, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &file)
	default:
		return nil, goerr.New("unsupported dashboard config format",
			goerr.T(types.ErrTagConfig), goerr.V("path", path), goerr.V("ext", ext))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard config",
			goerr.T(types.ErrTagConfig), goerr.V("path", path))
	}

	return &file, nil
}
