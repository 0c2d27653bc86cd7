package channel

import "errors"

// errWrongPublicInputCount signals a configuration mismatch (spec.md error
// kind 4) between a recursively verified sub-proof's declared shape and
// the shape this circuit expects to decode.
var errWrongPublicInputCount = errors.New("battlezip: unexpected public input count decoding recursive sub-proof")
