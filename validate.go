package imei

// Schema metadata for API documentation generators. The validator itself does
// not use the pattern; it checks bytes directly.
const (
	// Length is the number of digits in an IMEI.
	Length = 15

	// Pattern matches the canonical textual form.
	Pattern = `^[0-9]{15}$`

	// Example is a checksum-valid IMEI suitable for documentation.
	Example = "522872587498800"
)

// Valid reports whether s is a structurally valid IMEI: exactly 15 ASCII
// digits whose Luhn checksum is divisible by 10. It is a single pass over the
// input and returns false at the first disqualifying byte.
//
// Only ASCII digits are accepted, so the byte length and the character count
// coincide for any input that can pass; the length check below is therefore
// exact for Unicode input too.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}

	sum := 0
	for i := 0; i < Length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		n := int(c - '0')

		// Every second digit (1-based even position) is doubled, and a
		// double-digit result folds back by subtracting 9.
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}

	return sum%10 == 0
}

// Validate is Valid with an error return for call sites that propagate
// failures instead of branching on a bool. It returns nil or ErrInvalidIMEI.
func Validate(s string) error {
	if !Valid(s) {
		return ErrInvalidIMEI
	}
	return nil
}
