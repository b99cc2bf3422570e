package term

import "github.com/srlehn/blockimg/internal/consts"

// Error kinds returned by this module. Test with errors.Is.
var (
	// ErrDecode marks input bytes that could not be decoded as an image.
	ErrDecode = consts.ErrDecode
	// ErrWrite marks a failed write to the output sink. Bytes already
	// written stay written.
	ErrWrite = consts.ErrWrite
	// ErrConfig marks an unusable Config combination.
	ErrConfig = consts.ErrConfig
	// ErrNilImage is returned for a nil image.
	ErrNilImage = consts.ErrNilImage
)
