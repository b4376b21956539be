package util

import "fmt"

// FormatQuantity zero-pads n to width digits, odometer style.
func FormatQuantity(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// QuantityWidth returns the digit width needed to show every value in
// [min, max], never less than two.
func QuantityWidth(min, max int) int {
	w := 2
	for _, v := range []int{min, max} {
		if n := len(fmt.Sprint(v)); n > w {
			w = n
		}
	}
	return w
}
