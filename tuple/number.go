package tuple

// Number is satisfied by the integer and floating-point types,
// between which Go permits conversion.
//
// Convert and Assign use it to restrict element-wise conversion to
// numeric types. Narrowing conversions are allowed and follow the
// language's rules: integers are truncated to the destination width
// and floating-point values are truncated towards zero. Use Map
// with explicit conversion functions for any other policy.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
