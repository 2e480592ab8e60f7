package scaffold

// NameRegistry answers whether a module name is already defined in the
// namespace the generated project will compile into. Implementations are
// best-effort oracles; the check is advisory, not authoritative.
type NameRegistry interface {
	IsDefined(name string) bool
}

// ReservedRegistry is the default NameRegistry: a static table of module
// names shipped by the Elixir standard library and OTP that a generated
// project must never shadow.
type ReservedRegistry struct{}

// reservedModules lists top-level names that are always defined.
var reservedModules = map[string]bool{
	"Access":            true,
	"Agent":             true,
	"Application":       true,
	"Atom":              true,
	"Base":              true,
	"Code":              true,
	"Config":            true,
	"Date":              true,
	"DateTime":          true,
	"DynamicSupervisor": true,
	"Enum":              true,
	"Exception":         true,
	"File":              true,
	"Float":             true,
	"Function":          true,
	"GenServer":         true,
	"IO":                true,
	"Integer":           true,
	"Kernel":            true,
	"Keyword":           true,
	"List":              true,
	"Logger":            true,
	"Macro":             true,
	"Map":               true,
	"MapSet":            true,
	"Mix":               true,
	"Module":            true,
	"Node":              true,
	"Process":           true,
	"Protocol":          true,
	"Range":             true,
	"Record":            true,
	"Regex":             true,
	"Registry":          true,
	"Stream":            true,
	"String":            true,
	"Supervisor":        true,
	"System":            true,
	"Task":              true,
	"Time":              true,
	"Tuple":             true,
	"URI":               true,
	"Version":           true,
}

// IsDefined reports whether name exactly matches a reserved module. Dotted
// submodules of reserved names ("String.Custom") are legal and not flagged.
func (ReservedRegistry) IsDefined(name string) bool {
	return reservedModules[name]
}
