package archecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// ComponentExistsError reports an attempt to add a component to an entity
// or derive an archetype signature that already carries it.
type ComponentExistsError struct{ Component ComponentID }

func (e *ComponentExistsError) Error() string {
	return fmt.Sprintf("archecs: component %#x already present", uint64(e.Component))
}

// ComponentNotFoundError reports an attempt to derive an archetype
// signature without a component the archetype does not carry. Removing or
// reading an absent component through World is a silent no-op instead.
type ComponentNotFoundError struct{ Component ComponentID }

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("archecs: component %#x not present", uint64(e.Component))
}

// RowOutOfRangeError reports an out-of-bounds row access into an
// archetype column.
type RowOutOfRangeError struct{ Row, RowCount int }

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("archecs: row %d out of range (have %d)", e.Row, e.RowCount)
}

// UnregisteredComponentError reports a lookup against a ComponentID that
// was never registered on the world being queried.
type UnregisteredComponentError struct{ ID ComponentID }

func (e *UnregisteredComponentError) Error() string {
	return fmt.Sprintf("archecs: component id %#x not registered on this world", uint64(e.ID))
}

// fatal panics with err wrapped in a bark trace, for the programmer-error
// boundaries the spec treats as unrecoverable: archetype derivation
// conflicts, out-of-range rows, and similar caller bugs rather than
// ordinary runtime conditions.
func fatal(err error) {
	panic(bark.AddTrace(err))
}
