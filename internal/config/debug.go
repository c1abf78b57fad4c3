package config

import "os"

func IsDebug() bool {
	return os.Getenv("CREDITLENS_DEBUG") == "1"
}
