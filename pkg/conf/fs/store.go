// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conffs

import (
	"os"
	"path/filepath"

	"github.com/asvs-tools/asvsgen/pkg/conf"
	"gopkg.in/yaml.v3"
)

const ConfigFilename = "asvsgen.yaml"

type Store struct {
	rootDir string
	fp      string
}

// NewStore returns a store reading and writing config at fp. If fp is empty
// it defaults to asvsgen.yaml under rootDir.
func NewStore(rootDir, fp string) *Store {
	return &Store{
		rootDir: rootDir,
		fp:      fp,
	}
}

func (s *Store) path() string {
	if s.fp != "" {
		return s.fp
	}
	return filepath.Join(s.rootDir, ConfigFilename)
}

// Open reads the config file. A missing file is not an error, it yields a
// config of pure defaults.
func (s *Store) Open() (*conf.Config, error) {
	c := &conf.Config{}
	b, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) Save(c *conf.Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0644)
}
