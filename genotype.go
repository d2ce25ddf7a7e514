package heredity

import "fmt"

// CopyCount is the number of copies of the variant gene that an individual
// carries. Diploid, so 0, 1, or 2.
type CopyCount uint8

const (
	ZeroCopies CopyCount = iota
	OneCopy
	TwoCopies
)

// NCopyCounts is the number of distinct copy-count values.
const NCopyCounts = 3

func (c CopyCount) String() string {
	switch c {
	case ZeroCopies:
		return "0"
	case OneCopy:
		return "1"
	case TwoCopies:
		return "2"

	default:
		return fmt.Sprintf("Illegal copy count (%d)", uint8(c))
	}
}
