package luhn

// CardNumberLength is the only card length the bot accepts.
const CardNumberLength = 16

// Valid reports whether number is a 16-digit string passing the Luhn checksum.
func Valid(number string) bool {
	if len(number) != CardNumberLength {
		return false
	}
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		ch := number[i]
		if ch < '0' || ch > '9' {
			return false
		}
		d := int(ch - '0')
		if alternate {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alternate = !alternate
	}
	return sum%10 == 0
}
