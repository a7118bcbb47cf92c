package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	FillHorizon           bool
	OutputExtension       string
	RecordingEnabled      bool
	RecordingPath         string

	// MaxRunFor caps the run duration accepted by the HTTP API. Zero
	// disables the limit.
	MaxRunFor int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads the configuration from ./config.yaml once and
// returns the shared instance.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		c, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = c
	})

	return config
}

// Load reads the configuration. An empty path looks for config.yaml in the
// working directory. A missing file is not an error, the defaults apply.
// Values from a .env file and CPUSCHED_* environment variables override the
// file.
func Load(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	v.SetEnvPrefix("cpusched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &SchedulerConfig{}
	c.Port = v.GetInt("port")
	c.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	c.FillHorizon = v.GetBool("scheduler.fill_horizon")
	c.OutputExtension = v.GetString("report.output_extension")
	c.RecordingEnabled = v.GetBool("recording.enabled")
	c.RecordingPath = v.GetString("recording.path")
	c.MaxRunFor = v.GetInt("api.max_run_for")

	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.fill_horizon", false)
	v.SetDefault("report.output_extension", ".out")
	v.SetDefault("recording.enabled", false)
	v.SetDefault("recording.path", "")
	v.SetDefault("api.max_run_for", 100000)
}
