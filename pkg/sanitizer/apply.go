package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable sanitization pipeline.
// Preferred over repeated Apply calls when the same chain is used many times.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Record is the pipeline used for word list records: strips a BOM and control
// characters, then collapses and trims whitespace.
var Record = Compose(
	RemoveBOM,
	RemoveControlChars,
	RemoveExtraWhitespace,
)
