package morse

// MaxLength returns the maximum possible length of decoded output for an
// input of length bytes. Every terminator emits exactly one byte, so a buffer
// made of nothing but terminators decodes to the same length.
func MaxLength(length int) int {
	return length
}
