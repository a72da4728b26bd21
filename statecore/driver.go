package statecore

// Driver identifies a state storage backend.
type Driver string

const (
	DriverNull   Driver = "null"
	DriverFile   Driver = "file"
	DriverMemory Driver = "memory"
	DriverSQLite Driver = "sqlite"
)
