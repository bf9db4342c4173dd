package catalog

import (
	"fmt"
	"math/rand"
)

// Entity codes are generated client-side before anything is persisted.
// They are advisory: a uniform draw from [0, 9999] with no collision
// check, so duplicates are possible and the backend has the last word.

func NewCourseCode() string {
	return fmt.Sprintf("COURSE-%d", rand.Intn(10000))
}

func NewUserCode() string {
	return fmt.Sprintf("USR-%d", rand.Intn(10000))
}
