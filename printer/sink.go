package printer

import "io"

// sink wraps an io.Writer and remembers the first write error, so a long
// chain of writes can be expressed as unconditional calls that silently
// become no-ops once something has failed. Both printers build on this:
// the recursive printer calls into it directly from its call stack, the
// stack-safe printer drains its explicit work queue into it.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}
