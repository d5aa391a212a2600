/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package cli

import (
	"fmt"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/nabbar/golib/errors"
	logcfg "github.com/nabbar/golib/logger/config"
	libptc "github.com/nabbar/golib/network/protocol"
	spfvpr "github.com/spf13/viper"

	"github.com/nabbar/nvigo/rpc"
)

// Config is the optional config file of the standalone entry point. Flags
// and the positional address override its values.
type Config struct {
	// Network selects the transport: "unix" (default) or "tcp".
	Network string `json:"network,omitempty" yaml:"network,omitempty" toml:"network,omitempty" mapstructure:"network,omitempty" validate:"omitempty,oneof=unix tcp tcp4 tcp6"`

	// Address is the endpoint to connect to.
	Address string `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty" mapstructure:"address,omitempty"`

	// Log optionally configures the logger sinks.
	Log *logcfg.Options `json:"log,omitempty" yaml:"log,omitempty" toml:"log,omitempty" mapstructure:"log,omitempty"`
}

// Validate checks the config against the awaiting model.
func (o Config) Validate() liberr.Error {
	e := ErrorValidatorError.Error(nil)

	if err := libval.New().Struct(o); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		}

		for _, er := range err.(libval.ValidationErrors) {
			//nolint #goerr113
			e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
		}
	}

	if !e.HasParent() {
		return nil
	}

	return e
}

// rpcConfig merges the file values with the command line and renders the
// transport endpoint.
func (o Config) rpcConfig(addr string, tcp bool) rpc.Config {
	cfg := rpc.Config{
		Network: libptc.NetworkUnix,
		Address: o.Address,
	}

	if o.Network != "" {
		cfg.Network = libptc.Parse(o.Network)
	}

	if tcp {
		cfg.Network = libptc.NetworkTCP
	}

	if addr != "" {
		cfg.Address = addr
	}

	return cfg
}

func loadConfig(path string) (Config, liberr.Error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	v := spfvpr.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return cfg, ErrorConfigLoad.Error(err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, ErrorConfigLoad.Error(err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
