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

package rpc

import (
	"fmt"

	libval "github.com/go-playground/validator/v10"
	libptc "github.com/nabbar/golib/network/protocol"
)

// Config describes one endpoint of the framed RPC transport, for dialing
// or listening. Only stream protocols are meaningful: NetworkUnix and the
// NetworkTCP family.
type Config struct {
	// Network is the stream protocol to use.
	Network libptc.NetworkProtocol `json:"network" yaml:"network" toml:"network" mapstructure:"network"`

	// Address is the endpoint: a filesystem path for unix sockets, a
	// host:port for tcp.
	Address string `json:"address" yaml:"address" toml:"address" mapstructure:"address" validate:"required"`
}

// Validate checks the config against the awaiting model.
func (o Config) Validate() error {
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

	switch o.Network {
	case libptc.NetworkUnix, libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6:
	default:
		//nolint #goerr113
		e.Add(fmt.Errorf("network '%s' is not a stream protocol", o.Network.String()))
	}

	if !e.HasParent() {
		return nil
	}

	return e
}
