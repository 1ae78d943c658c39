package atomize

// PackageName and PackageVersion identify this library in the generator
// element installed on every feed it produces.
const (
	PackageName    = "atomize-go"
	PackageVersion = "0.1.0"
)
