package irgrid

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks to ensure that the primitive interface is implemented by all required types
	_ Primitive = Sphere{}
	_ Primitive = Box{}
	_ Primitive = Triangle{}
)
