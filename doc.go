// Package imei validates International Mobile Equipment Identity (IMEI)
// numbers and provides a value type that is guaranteed valid for its whole
// lifetime.
//
// An IMEI is a 15-digit device identifier protected by a Luhn checksum. The
// package offers two layers: plain check functions (Valid, Validate) for
// callers that only need a verdict, and the IMEI value type for callers that
// want the type system to carry the guarantee. An IMEI can only be obtained
// through New, so any non-zero instance has already passed the checksum.
//
// # Usage
//
//	import "github.com/dmitrymomot/imei"
//
//	if !imei.Valid("490154203237518") {
//	    // reject input
//	}
//
//	id, err := imei.New(userInput)
//	if err != nil {
//	    // errors.Is(err, imei.ErrInvalidIMEI) == true
//	}
//	fmt.Println(id) // prints the digits unchanged
//
// The value type implements the usual codec interfaces (text, JSON, YAML,
// msgpack, database/sql), and every decode path re-runs the same validation,
// so a stored or transmitted IMEI cannot bypass the check.
//
// # Error Handling
//
// All failures are reported as ErrInvalidIMEI regardless of cause (wrong
// length, non-digit character, failed checksum). Invalid input is an ordinary
// outcome, never a panic, and the package performs no logging.
//
// # Thread Safety
//
// Everything in this package is stateless and allocation-free on the
// validation path; concurrent use needs no coordination.
package imei
