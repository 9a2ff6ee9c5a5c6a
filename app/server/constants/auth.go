package constants

import "time"

const DefaultTokenLifetime = 30 * time.Minute
