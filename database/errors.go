package database

import "errors"

var (
	// ErrConfiguration is returned when a setting required
	// to connect to the database is missing
	ErrConfiguration = errors.New("database configuration is incomplete")
	// ErrDatabaseConnection is returned when a connection attempt fails
	ErrDatabaseConnection = errors.New("could not connect to database")
	// ErrNotConnected is returned when the database is used
	// while there is no active connection
	ErrNotConnected = errors.New("database is not connected")
)
