package testutils

import "os"

// SetEnvVars sets vars and returns a func restoring their previous values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	restoreVars = snapshotEnv(names)

	for name, value := range vars {
		mustSetenv(name, value)
	}
	return restoreVars
}

// UnsetVars unsets vars and returns a func restoring their previous values
func UnsetVars(vars ...string) (restoreVars func()) {
	restoreVars = snapshotEnv(vars)

	for _, name := range vars {
		if err := os.Unsetenv(name); err != nil {
			panic(err)
		}
	}
	return restoreVars
}

// snapshotEnv records names and returns a func putting the recorded state back,
// unsetting the ones that were not set
func snapshotEnv(names []string) func() {
	previous := map[string]*string{}
	for _, name := range names {
		if value, ok := os.LookupEnv(name); ok {
			previous[name] = &value
		} else {
			previous[name] = nil
		}
	}

	return func() {
		for name, value := range previous {
			if value == nil {
				if err := os.Unsetenv(name); err != nil {
					panic(err)
				}
				continue
			}
			mustSetenv(name, *value)
		}
	}
}

func mustSetenv(name, value string) {
	if err := os.Setenv(name, value); err != nil {
		panic(err)
	}
}
