// SPDX-License-Identifier: MIT
package obligation

import "errors"

// ErrMultipleOutputs flags a non-fatal structural warning: more than one
// bad/output signal was present where exactly one is expected. Output()
// already picks a deterministic first, so this never blocks emission, but
// callers (cmd/certifaiger) surface it to the user.
var ErrMultipleOutputs = errors.New("obligation: model or witness declares more than one bad/output signal")
