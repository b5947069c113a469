package telegram

import (
	"strconv"
	"strings"
)

var sizeUnits = []string{"Б", "КБ", "МБ", "ГБ"}

// HumanSize renders a byte count for the reply text: divide by 1024 up the
// unit ladder, one decimal place, trailing ".0" stripped. Values past ГБ are
// not divided further.
func HumanSize(numBytes int64) string {
	size := float64(numBytes)
	for i, unit := range sizeUnits {
		if size < 1024 || i == len(sizeUnits)-1 {
			text := strings.TrimSuffix(strconv.FormatFloat(size, 'f', 1, 64), ".0")
			return text + " " + unit
		}
		size /= 1024
	}
	return ""
}
