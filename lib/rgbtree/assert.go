package rgbtree

import (
	"fmt"

	"github.com/benz9527/rgbtree/lib/infra"
)

// newAssertionError builds the fatal-precondition error this package
// panics with, so every precondition violation carries a captured call
// stack (see lib/infra's ErrorStack) instead of a bare string.
func newAssertionError(msg string) error {
	return infra.NewErrorStack("[rgbtree] " + msg)
}

func newAssertionErrorf(format string, args ...any) error {
	return infra.NewErrorStackf("[rgbtree] "+format, args...)
}

// assertf panics with a stack-carrying error when cond is false. Every
// precondition violation named in spec §7 (removing a link that is not
// a member, double-inserting a link, a corrupt link passed to an
// internal primitive) goes through here: continuing past a broken
// invariant corrupts the structure, so the policy is assert-and-abort,
// not best-effort recovery.
func (t *Tree[K]) assertf(cond bool, format string, args ...any) {
	if cond || !t.assert {
		return
	}
	err := newAssertionErrorf(format, args...)
	t.logger.Error(fmt.Sprintf(format, args...))
	panic(err)
}
