package solver

import "fmt"

// errInvalidFanIn is returned by WithXorFanIn when n is too small to
// encode anything.
type errInvalidFanIn int

func (e errInvalidFanIn) Error() string {
	return fmt.Sprintf("xor fan-in must be at least 2, got %d", int(e))
}
