package entity

// User mirrors the backend's user resource. Code is a client-generated
// pseudo-identifier ("USR-" + random 0..9999); the random draw is the only
// uniqueness it has.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Code     string `json:"code"`
}

// Lecturer is created alongside a User when someone registers as a
// lecturer. Code mirrors the associated user's code.
type Lecturer struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CourseName string `json:"courseName"`
}
