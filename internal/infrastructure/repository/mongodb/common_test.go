package mongodb

import "time"

// testTimeout bounds setup operations against the test database.
const testTimeout = 10 * time.Second
