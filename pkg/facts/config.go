package facts

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk fact cache.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the cache path from a .tally config file or TALLY_*
// environment variables, defaulting under the home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("factcache", "~/.tally/facts")
	viper.SetConfigName(".tally") // .yaml is implicit
	viper.SetEnvPrefix("TALLY")
	viper.AutomaticEnv()

	if override := os.Getenv("TALLY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("factcache"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: filepath.Clean(path)}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
