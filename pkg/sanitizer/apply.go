package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose builds a reusable pipeline out of transforms.
// Preferred over repeated Apply calls when the same chain runs on every keystroke.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Pre-built pipelines for the form field kinds that restrict input.
var (
	// Username keeps Latin letters and digits only.
	Username = Compose(KeepAlphanumeric)

	// Email keeps the characters an address may contain.
	Email = Compose(KeepEmailChars)

	// Birthdate truncates and inserts date separators.
	Birthdate = Compose(FormatBirthdate)
)
