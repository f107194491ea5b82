//go:build !linux

package sound

// newPulse returns ErrUnsupported outside Linux.
func newPulse(Format) (Player, error) {
	return nil, ErrUnsupported
}
