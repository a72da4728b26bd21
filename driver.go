package macrostate

import "github.com/goforj/macrostate/statecore"

// Driver identifies a state storage backend.
type Driver = statecore.Driver

const (
	DriverNull   = statecore.DriverNull
	DriverFile   = statecore.DriverFile
	DriverMemory = statecore.DriverMemory
	DriverSQLite = statecore.DriverSQLite
)

// Store is the driver contract shared with external driver modules.
type Store = statecore.Store
