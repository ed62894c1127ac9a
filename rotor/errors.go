// SPDX-License-Identifier: MIT

package rotor

import "errors"

// ErrNonFinite indicates a rotor with NaN or ±Inf components.
var ErrNonFinite = errors.New("rotor: non-finite component")
