//go:build darwin && arm64

package host

import "github.com/shoenig/go-m1cpu"

// performanceCores returns the P-core count. Apple silicon has no SMT, so
// threads equal cores.
func performanceCores() (int, int) {
	if !m1cpu.IsAppleSilicon() {
		return 0, 0
	}

	n := m1cpu.PCoreCount()

	return n, n
}
