/*
 * Copyright (c) 2025, Veritag Labs. (https://veritag.io).
 *
 * Veritag Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "sync"

// VeritagRuntime holds the runtime configuration for the Veritag server.
type VeritagRuntime struct {
	VeritagHome string `yaml:"veritag_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *VeritagRuntime
	once          sync.Once
)

// InitializeVeritagRuntime initializes the VeritagRuntime configuration.
func InitializeVeritagRuntime(veritagHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &VeritagRuntime{
			VeritagHome: veritagHome,
			Config:      *config,
		}
	})

	return nil
}

// GetVeritagRuntime returns the VeritagRuntime configuration.
func GetVeritagRuntime() *VeritagRuntime {
	if runtimeConfig == nil {
		panic("VeritagRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetVeritagRuntime resets the VeritagRuntime.
// This should only be used in tests to reset the singleton state.
func ResetVeritagRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
