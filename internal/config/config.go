package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Listen     string     `koanf:"listen"`
	Backend    Backend    `koanf:"backend"`
	Storage    Storage    `koanf:"storage"`
	Categories Categories `koanf:"categories"`
}

type Backend struct {
	URL string `koanf:"url"`
	// TimeoutSeconds bounds every single backend call; there are no retries.
	TimeoutSeconds int `koanf:"timeoutseconds"`
}

type Storage struct {
	// FavoritesPath is the JSON file holding the favorite category ids.
	FavoritesPath string `koanf:"favoritespath"`
}

type Categories struct {
	// Defaults are built-in category names synthesized client-side when the
	// backend does not know them. They cannot be renamed or deleted.
	Defaults []string `koanf:"defaults"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Listen: ":8282",
		Backend: Backend{
			URL:            "http://localhost:8080",
			TimeoutSeconds: 15,
		},
		Storage: Storage{
			FavoritesPath: "./data/favorites.json",
		},
		Categories: Categories{
			Defaults: []string{"Food", "Entertainment", "Transportation", "Utilities", "Health", "Other"},
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SPENDSIGHT_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SPENDSIGHT_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
