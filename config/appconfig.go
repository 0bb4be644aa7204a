// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"candlekit/cache"

	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	LightTheme         bool `yaml:",omitempty"`
	LayoutCacheEntries int  `yaml:",omitempty"`
	WindowConfig       []WindowConfig
}

func NewAppConfig() AppConfig {
	return AppConfig{
		LayoutCacheEntries: cache.DefaultMaxEntries,
		WindowConfig:       []WindowConfig{NewWindowConfig()},
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	if a.LayoutCacheEntries <= 0 {
		a.LayoutCacheEntries = cache.DefaultMaxEntries
	}
	if len(a.WindowConfig) == 0 {
		a.WindowConfig = append(a.WindowConfig, NewWindowConfig())
	}
	for i := range a.WindowConfig {
		a.WindowConfig[i].sanitize()
	}
}
