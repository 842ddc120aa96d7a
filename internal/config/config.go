// internal/config/config.go
package config

import (
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"taxdump/internal/logging"
)

// Config carries environment defaults for the taxdump tools. Flags override
// everything in here; the environment only moves the starting point.
type Config struct {
	// Output holds defaults for the generated files.
	Output OutputConfig `mapstructure:"output"`
	// Build holds defaults for tree construction.
	Build BuildConfig `mapstructure:"build"`
	// Log holds defaults for the logger.
	Log logging.Config `mapstructure:"log"`
}

// OutputConfig holds defaults for the generated files.
type OutputConfig struct {
	// MapFile is the record→taxid table name, relative to the output dir.
	MapFile string `mapstructure:"map_file" default:"lastdb.tax"`
}

// BuildConfig holds defaults for tree construction.
type BuildConfig struct {
	// IDStart seeds sequential taxid numbering; the first taxon gets
	// IDStart+1.
	IDStart int `mapstructure:"id_start" default:"0"`
	// RankFile optionally points at a YAML rank vocabulary file.
	RankFile string `mapstructure:"rank_file" default:""`
}

// Load reads defaults from TAXDUMP_* environment variables and an optional
// .env file in the working directory.
func Load() (*Config, error) {
	// Ignore error if the file doesn't exist (the normal case).
	_ = godotenv.Overload(".env")

	v := viper.New()

	// Recursively parse struct tags to register default values.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys
	// (e.g. TAXDUMP_OUTPUT_MAP_FILE -> output.map_file).
	v.SetEnvPrefix("taxdump")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues walks the struct tags and registers each key's default in
// Viper, which also makes the key visible to AutomaticEnv.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
