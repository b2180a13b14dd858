package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port              string `env:"PORT" envDefault:"8080"`
	FirebaseProjectID string `env:"FIREBASE_PROJECT_ID,required"`
	StorageBucket     string `env:"STORAGE_BUCKET,required"`
	UploadFolder      string `env:"UPLOAD_FOLDER" envDefault:"uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
