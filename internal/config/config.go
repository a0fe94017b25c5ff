package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Export
	}

	Database struct {
		Path string
	}

	Export struct {
		Dir string // Directory for CSV exports and report files
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_dir", ".")

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
