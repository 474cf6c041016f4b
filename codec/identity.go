// Package codec provides reusable sub-constructors beyond the engine's
// identity fallback: symbolic enumerations and RFC3339 timestamps. All of
// them unwrap back to their wire primitive during serialization, keeping the
// parse/serialize round trip lossless.
package codec

import (
	resmap "github.com/resmap/resmap"
)

// Identity returns the pass-through Constructor. Registering it is
// equivalent to leaving a field undeclared; it exists so a schema can spell
// the fallback out explicitly.
func Identity() resmap.Constructor { return resmap.Identity }
