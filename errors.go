package imei

import "errors"

// ErrInvalidIMEI covers every validation failure: wrong length, non-digit
// characters, and a failed checksum. The causes are deliberately not
// distinguished; callers match the single sentinel with errors.Is.
var ErrInvalidIMEI = errors.New("invalid imei number")
