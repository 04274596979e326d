package config

import (
	"fmt"
	"path/filepath"
)

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

// NewDriver picks a driver by the extension of filePath. Anything other than
// .json is YAML.
func NewDriver(filePath string) Driver {
	if filepath.Ext(filePath) == ".json" {
		return NewJSON(filePath)
	}
	return NewYAML(filePath)
}

func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return Store{}, fmt.Errorf("write default config: %w", err)
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (p *Store) GetConfig() (Config, error) {
	return p.driver.Read()
}
