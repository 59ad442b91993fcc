package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/diffmask/pkg/errors"
	"github.com/arthur-debert/diffmask/pkg/logging"
)

// EnvPrefix prefixes environment overrides. DIFFMASK_VIEWER_COMMAND sets
// viewer.command.
const EnvPrefix = "DIFFMASK_"

var log = logging.GetLogger("config")

// Options controls where Load reads its layers from.
type Options struct {
	// ConfigFile is the user TOML file. A missing file is skipped.
	ConfigFile string
	// Getenv looks up environment overrides; nil means os.Getenv.
	Getenv func(string) string
	// Overrides are applied last, keyed by dotted path
	// ("portage.config_root").
	Overrides map[string]interface{}
}

// Load builds the configuration from the embedded defaults, the user file,
// the environment and the overrides, in that order.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse default config")
	}
	known := k.Keys()

	// 2. User file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
			log.Debug().Str("path", opts.ConfigFile).Msg("Loaded user config")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot stat %s", opts.ConfigFile)
		}
	}

	// 3. Environment
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if env := envOverrides(known, getenv); len(env) > 0 {
		if err := k.Load(confmap.Provider(env, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EnvName is the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// envOverrides maps known keys to their environment values. Keys are
// matched explicitly since underscores appear inside key names.
func envOverrides(keys []string, getenv func(string) string) map[string]interface{} {
	out := make(map[string]interface{})
	for _, key := range keys {
		if v := getenv(EnvName(key)); v != "" {
			out[key] = v
			log.Debug().Str("key", key).Str("env", EnvName(key)).Msg("Environment override")
		}
	}
	return out
}

func validate(cfg *Config) error {
	var missing []string
	if cfg.Portage.UnmaskFile == "" {
		missing = append(missing, "portage.unmask_file")
	}
	if cfg.Viewer.Command == "" {
		missing = append(missing, "viewer.command")
	}
	for i, r := range cfg.Repositories {
		if r.Location == "" {
			missing = append(missing, fmt.Sprintf("repositories[%d].location", i))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.Newf(errors.ErrConfigValid, "missing required configuration: %s", strings.Join(missing, ", ")).
			WithDetail("keys", missing)
	}
	return nil
}
