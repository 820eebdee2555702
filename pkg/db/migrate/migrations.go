package migrate

// Keep this in order of execution, oldest to newest.
var migrations = []Migration{
	createTables,
	seedThemes,
}
