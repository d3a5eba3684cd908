package greeting

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// Greet returns the greeting used by the smoke checks, e.g. "Hello, Jenkins!".
func Greet(name string) string {
	return "Hello, " + name + "!"
}
