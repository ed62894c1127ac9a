// SPDX-License-Identifier: MIT

package gate

import (
	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/rotor"
)

// SetRotorFactory replaces the rotor constructor used by TierConstruction.
// Call it before the pipeline is shared.
func SetRotorFactory(p *Pipeline, f func(v1, v2 lattice.Point) rotor.Rotor) { p.newRotor = f }
