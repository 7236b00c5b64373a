package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "SCHEDSIM"

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum float64
	MaxProcesses          int
	MaxSegments           int
	CacheEnabled          bool
	CacheNumCounters      int64
	CacheMaxCost          int64
	LogLevel              string
	LogDevelopment        bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml (optional) and the environment once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing default file is not an error.
// SCHEDSIM_* environment variables, including those from a .env file,
// override file values.
func Load(path string) (*SchedulerConfig, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetFloat64("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		MaxSegments:           v.GetInt("scheduler.max_segments"),
		CacheEnabled:          v.GetBool("cache.enabled"),
		CacheNumCounters:      v.GetInt64("cache.num_counters"),
		CacheMaxCost:          v.GetInt64("cache.max_cost"),
		LogLevel:              v.GetString("log.level"),
		LogDevelopment:        v.GetBool("log.development"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 1000)
	v.SetDefault("scheduler.max_segments", 100000)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.num_counters", 10000)
	v.SetDefault("cache.max_cost", 1<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// NewLogger builds the zap logger described by the config.
func (c *SchedulerConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	if c.LogDevelopment {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = level
	return zapConfig.Build()
}
