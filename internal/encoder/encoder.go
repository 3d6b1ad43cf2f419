// Package encoder turns text into a QR symbol matrix.
//
// The encoding algorithm itself is delegated to github.com/skip2/go-qrcode.
// Callers depend only on the Encoder interface, so any implementation that
// produces a Matrix can be swapped in.
package encoder

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrCapacityExceeded is returned when the payload does not fit in the
// largest symbol the encoder may use.
var ErrCapacityExceeded = errors.New("data exceeds QR code capacity")

// Level is the error correction level of a symbol.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

// MaxVersion is the largest QR symbol version.
const MaxVersion = 40

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Encoder builds symbol matrices.
type Encoder interface {
	// Encode encodes text at the given error correction level. The symbol
	// starts at minVersion; with fit set it grows until the text fits,
	// otherwise exactly minVersion is used.
	Encode(text string, minVersion int, level Level, fit bool) (*Matrix, error)
}

// Skip2 is an Encoder backed by github.com/skip2/go-qrcode.
type Skip2 struct{}

var _ Encoder = Skip2{}

// Encode implements Encoder.
func (Skip2) Encode(text string, minVersion int, level Level, fit bool) (*Matrix, error) {
	if minVersion < 1 || minVersion > MaxVersion {
		return nil, fmt.Errorf("invalid symbol version %d: must be between 1 and %d", minVersion, MaxVersion)
	}

	recovery, err := recoveryLevel(level)
	if err != nil {
		return nil, err
	}

	var q *qrcode.QRCode
	if fit {
		// Smallest version that holds the data
		q, err = qrcode.New(text, recovery)
		if err == nil && q.VersionNumber < minVersion {
			q, err = qrcode.NewWithForcedVersion(text, minVersion, recovery)
		}
	} else {
		q, err = qrcode.NewWithForcedVersion(text, minVersion, recovery)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes at level %s: %v", ErrCapacityExceeded, len(text), level, err)
	}

	// The quiet zone is added by the renderer
	q.DisableBorder = true

	return newMatrix(q.VersionNumber, q.Bitmap()), nil
}

func recoveryLevel(l Level) (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelL:
		return qrcode.Low, nil
	case LevelM:
		return qrcode.Medium, nil
	case LevelQ:
		return qrcode.High, nil
	case LevelH:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unsupported error correction level: %s", l)
	}
}
