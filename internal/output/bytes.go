package output

import "fmt"

const (
	bytesPerKB = 1024.0
	bytesPerMB = 1024.0 * bytesPerKB
	bytesPerGB = 1024.0 * bytesPerMB
)

// FormatBytes renders a byte count with two decimals in the largest binary
// unit that fits, or as a plain count below 1 KB.
func FormatBytes(b uint64) string {
	f := float64(b)
	switch {
	case f >= bytesPerGB:
		return fmt.Sprintf("%.2f GB", f/bytesPerGB)
	case f >= bytesPerMB:
		return fmt.Sprintf("%.2f MB", f/bytesPerMB)
	case f >= bytesPerKB:
		return fmt.Sprintf("%.2f KB", f/bytesPerKB)
	default:
		return fmt.Sprintf("%d bytes", b)
	}
}
