package utils

// doubled[d] is 2*d with its two decimal digits summed.
var doubled = [10]int{0, 2, 4, 6, 8, 1, 3, 5, 7, 9}

// LuhnCheck reports whether number passes the mod-10 checksum.
// Digits are walked from the rightmost one; every second digit is doubled.
// Empty input or any non-digit byte yields false.
func LuhnCheck(number string) bool {
	n := len(number)
	if n == 0 {
		return false
	}

	sum := 0
	for pos := 0; pos < n; pos++ {
		c := number[n-1-pos]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if pos%2 == 1 {
			d = doubled[d]
		}
		sum += d
	}
	return sum%10 == 0
}
