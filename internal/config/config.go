package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"github.com/jewebs/sistema-gestao-conteudo/pkg/config"
)

type Config struct {
	Redis  config.RedisConfig  `yaml:"redis"`
	MQ     config.MQConfig     `yaml:"mq"`
	Server config.ServerConfig `yaml:"server"`
	Notify config.NotifyConfig `yaml:"notify"`
}

func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideNotifyFromEnv(&cfg.Notify)

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Notify.IntervalSeconds <= 0 {
		cfg.Notify.IntervalSeconds = 3600
	}
	if cfg.Notify.DedupTTLSeconds <= 0 {
		cfg.Notify.DedupTTLSeconds = 86400
	}

	return &cfg
}
