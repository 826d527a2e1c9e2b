// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package conf

import "fmt"

const (
	DefaultVersion = "5.0"

	DefaultEnglishURL = "https://github.com/OWASP/ASVS.git"
	DefaultEnglishDir = "ASVS"

	DefaultJapaneseURL = "https://github.com/coky-t/owasp-asvs-ja.git"
	DefaultJapaneseDir = "owasp-asvs-ja"

	DefaultOutputDir = "output"

	DefaultMergeKey = "req_id"
)

// UnmatchedPolicy decides what happens to an English row whose req_id has no
// Japanese counterpart.
type UnmatchedPolicy string

const (
	// UnmatchedEmit keeps the row, leaving the Japanese columns empty.
	UnmatchedEmit UnmatchedPolicy = "emit"
	// UnmatchedSkip drops the row from the merged output.
	UnmatchedSkip UnmatchedPolicy = "skip"
)

func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	switch UnmatchedPolicy(s) {
	case UnmatchedEmit, UnmatchedSkip:
		return UnmatchedPolicy(s), nil
	case "":
		return UnmatchedEmit, nil
	}
	return "", fmt.Errorf("invalid unmatched policy %q (valid options are %q and %q)", s, UnmatchedEmit, UnmatchedSkip)
}

type Repo struct {
	// URL is the clone URL of the upstream repository.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`

	// Dir is the checkout directory, relative to the workspace root.
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`
}

type Repos struct {
	English  *Repo `yaml:"english,omitempty" json:"english,omitempty"`
	Japanese *Repo `yaml:"japanese,omitempty" json:"japanese,omitempty"`
}

type Output struct {
	// Dir is where generated and merged CSVs are written, relative to the
	// workspace root.
	Dir string `yaml:"dir,omitempty" json:"dir,omitempty"`

	// BOM, when set to `true`, prefixes the merged CSV with a UTF-8 byte
	// order mark. Some spreadsheet programs require it to detect UTF-8.
	BOM *bool `yaml:"bom,omitempty" json:"bom,omitempty"`
}

type Merge struct {
	// Key is the join column shared by both CSVs.
	Key string `yaml:"key,omitempty" json:"key,omitempty"`

	// Unmatched decides what happens to English rows without a Japanese
	// counterpart. Either "emit" (default) or "skip".
	Unmatched UnmatchedPolicy `yaml:"unmatched,omitempty" json:"unmatched,omitempty"`

	// SortRows, when set to `true`, orders merged rows by numeric req_id
	// instead of keeping the English file's row order.
	SortRows *bool `yaml:"sortRows,omitempty" json:"sortRows,omitempty"`
}

type Config struct {
	// Version is the ASVS version to export, e.g. "5.0".
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	Repos  *Repos  `yaml:"repos,omitempty" json:"repos,omitempty"`
	Output *Output `yaml:"output,omitempty" json:"output,omitempty"`
	Merge  *Merge  `yaml:"merge,omitempty" json:"merge,omitempty"`
}

func (c *Config) GetVersion() string {
	if c.Version != "" {
		return c.Version
	}
	return DefaultVersion
}

func (c *Config) GetEnglishRepo() Repo {
	r := Repo{URL: DefaultEnglishURL, Dir: DefaultEnglishDir}
	if c.Repos != nil && c.Repos.English != nil {
		if s := c.Repos.English.URL; s != "" {
			r.URL = s
		}
		if s := c.Repos.English.Dir; s != "" {
			r.Dir = s
		}
	}
	return r
}

func (c *Config) GetJapaneseRepo() Repo {
	r := Repo{URL: DefaultJapaneseURL, Dir: DefaultJapaneseDir}
	if c.Repos != nil && c.Repos.Japanese != nil {
		if s := c.Repos.Japanese.URL; s != "" {
			r.URL = s
		}
		if s := c.Repos.Japanese.Dir; s != "" {
			r.Dir = s
		}
	}
	return r
}

func (c *Config) GetOutputDir() string {
	if c.Output != nil && c.Output.Dir != "" {
		return c.Output.Dir
	}
	return DefaultOutputDir
}

func (c *Config) GetOutputBOM() bool {
	if c.Output != nil && c.Output.BOM != nil {
		return *c.Output.BOM
	}
	return false
}

func (c *Config) GetMergeKey() string {
	if c.Merge != nil && c.Merge.Key != "" {
		return c.Merge.Key
	}
	return DefaultMergeKey
}

func (c *Config) GetUnmatchedPolicy() UnmatchedPolicy {
	if c.Merge != nil && c.Merge.Unmatched != "" {
		return c.Merge.Unmatched
	}
	return UnmatchedEmit
}

func (c *Config) GetSortRows() bool {
	if c.Merge != nil && c.Merge.SortRows != nil {
		return *c.Merge.SortRows
	}
	return false
}
