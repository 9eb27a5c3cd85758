//go:build !cgo || !unix

package hdrscan

import "errors"

// Scan needs cgo and a unix host to read <signal.h>.
func Scan() (Codes, error) {
	return Codes{}, errors.New("hdrscan: constant extraction requires cgo on a unix host")
}
