package fm2

import "errors"

// ErrTextLogUnsupported is returned by Write for movies whose body is not
// flagged as binary.  Text-log input serialization is unimplemented.
var ErrTextLogUnsupported = errors.New("text-log movie bodies are unsupported")
