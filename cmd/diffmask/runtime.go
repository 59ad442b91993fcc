package diffmask

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/diffmask/pkg/config"
	"github.com/arthur-debert/diffmask/pkg/filesystem"
	"github.com/arthur-debert/diffmask/pkg/paths"
	"github.com/arthur-debert/diffmask/pkg/types"
	"github.com/arthur-debert/diffmask/pkg/ui"
)

// globals are the persistent flags shared by every command.
type globals struct {
	verbosity  int
	unmaskFile string
	configRoot string
	configFile string
	format     string
}

// runtime is what a command needs to run: where files live, how to reach
// them and how to print the result.
type runtime struct {
	fs       types.FS
	cfg      *config.Config
	paths    paths.Paths
	renderer ui.Renderer
}

// newRuntime loads the configuration for the flags in g and picks the
// output renderer for w.
func newRuntime(g *globals, w io.Writer) (*runtime, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	renderer, err := ui.NewRenderer(format, w)
	if err != nil {
		return nil, err
	}

	// -U is relative to the working directory, not to the config root
	if g.unmaskFile != "" {
		abs, err := filepath.Abs(paths.ExpandHome(g.unmaskFile))
		if err != nil {
			return nil, err
		}
		g.unmaskFile = abs
	}

	configFile := g.configFile
	if configFile == "" {
		p, err := paths.New("")
		if err != nil {
			return nil, err
		}
		configFile = p.ConfigFile()
	}

	overrides := map[string]interface{}{}
	if g.configRoot != "" {
		overrides["portage.config_root"] = g.configRoot
	}
	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	var p paths.Paths
	if p, err = cfg.Paths(); err != nil {
		return nil, err
	}
	if g.configFile != "" {
		p = configFilePaths{Paths: p, file: g.configFile}
	}

	log.Debug().
		Str("config_file", configFile).
		Str("config_root", p.ConfigRoot()).
		Str("format", format.String()).
		Msg("Runtime initialized")

	return &runtime{
		fs:       filesystem.NewOS(),
		cfg:      cfg,
		paths:    p,
		renderer: renderer,
	}, nil
}

// runtimeFor builds the runtime for cmd, writing to its output stream.
func runtimeFor(cmd *cobra.Command, g *globals) (*runtime, error) {
	return newRuntime(g, cmd.OutOrStdout())
}

// configFilePaths points ConfigFile at the --config flag.
type configFilePaths struct {
	paths.Paths
	file string
}

func (c configFilePaths) ConfigFile() string {
	return c.file
}
