package model

import "strconv"

// FormatYen renders an amount as "¥1,234". Negative amounts keep their
// sign and skip digit grouping.
func FormatYen(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if amount < 0 {
		return "¥" + s
	}
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	return "¥" + out
}
