package functional

// Compile-time minimum checks. Each index below folds to the constant zero
// only when the minimum matches its expected value. Any other value is an
// out-of-range or negative constant index and the package does not build.
var (
	_ = [1]struct{}{}[min(0, 1)-0]
	_ = [1]struct{}{}[min(1, 0)-0]
	_ = [1]struct{}{}[min(0, 0)-0]
	_ = [1]struct{}{}[min(-1, 1)-(-1)]
	_ = [1]struct{}{}[min('a', 'b')-'a']

	// Result commutativity.
	_ = [1]struct{}{}[min(0, 1)-min(1, 0)]
	_ = [1]struct{}{}[min(-1, 1)-min(1, -1)]
	_ = [1]struct{}{}[min('a', 'b')-min('b', 'a')]
)
